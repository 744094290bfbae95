package models

import "time"

// Customer statuses as stored by the server.
const (
	CustomerStatusPending  = "Pending"
	CustomerStatusReceived = "Received"
)

// Customer is a buyer with an outstanding or settled balance.
type Customer struct {
	CustomerID int64  `json:"customerId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Balance    string `json:"balance"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

func (c Customer) EntityID() int64        { return c.CustomerID }
func (c Customer) CreatedTime() time.Time { return ParseTimestamp(c.CreatedAt) }
func (c Customer) EntityStatus() string   { return c.Status }

// CustomerInput is the payload of createCustomer and updateCustomer.
type CustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Balance string `json:"balance"`
	Status  string `json:"status"`
}
