package models

import "time"

type Sale struct {
	SaleID        int64      `json:"saleId"`
	CustomerID    int64      `json:"customerId"`
	InvoiceNo     string     `json:"invoiceNo"`
	Date          string     `json:"date"`
	Status        string     `json:"status"`
	CreatedAt     string     `json:"createdAt"`
	PaymentMethod string     `json:"paymentMethod"`
	Notes         string     `json:"notes,omitempty"`
	Items         []SaleItem `json:"items"`
	Total         float64    `json:"total"`
}

func (s Sale) EntityID() int64        { return s.SaleID }
func (s Sale) CreatedTime() time.Time { return ParseTimestamp(s.CreatedAt) }
func (s Sale) EntityStatus() string   { return s.Status }

type SaleInput struct {
	CustomerID    int64      `json:"customerId"`
	InvoiceNo     string     `json:"invoiceNo"`
	Date          string     `json:"date"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod"`
	Notes         string     `json:"notes,omitempty"`
	Items         []SaleItem `json:"items"`
	Total         float64    `json:"total"`
}
