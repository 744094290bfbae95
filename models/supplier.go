package models

import "time"

// Supplier statuses as stored by the server.
const (
	SupplierStatusDue  = "Due"
	SupplierStatusPaid = "Paid"
)

// Supplier is a vendor the shop purchases stock from.
type Supplier struct {
	SupplierID int64  `json:"supplierId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Balance    string `json:"balance"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

func (s Supplier) EntityID() int64        { return s.SupplierID }
func (s Supplier) CreatedTime() time.Time { return ParseTimestamp(s.CreatedAt) }
func (s Supplier) EntityStatus() string   { return s.Status }

type SupplierInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Balance string `json:"balance"`
	Status  string `json:"status"`
}
