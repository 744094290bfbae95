package models

import "time"

// Purchase is a stock-in invoice from a supplier.
type Purchase struct {
	PurchaseID    int64          `json:"purchaseId"`
	SupplierID    int64          `json:"supplierId"`
	InvoiceNo     string         `json:"invoiceNo"`
	Date          string         `json:"date"`
	Status        string         `json:"status"`
	CreatedAt     string         `json:"createdAt"`
	PaymentMethod string         `json:"paymentMethod"`
	Notes         string         `json:"notes,omitempty"`
	Items         []PurchaseItem `json:"items"`
	Total         float64        `json:"total"`
}

func (p Purchase) EntityID() int64        { return p.PurchaseID }
func (p Purchase) CreatedTime() time.Time { return ParseTimestamp(p.CreatedAt) }
func (p Purchase) EntityStatus() string   { return p.Status }

type PurchaseInput struct {
	SupplierID    int64          `json:"supplierId"`
	InvoiceNo     string         `json:"invoiceNo"`
	Date          string         `json:"date"`
	Status        string         `json:"status"`
	PaymentMethod string         `json:"paymentMethod"`
	Notes         string         `json:"notes,omitempty"`
	Items         []PurchaseItem `json:"items"`
	Total         float64        `json:"total"`
}
