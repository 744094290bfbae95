package models

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Invoice statuses and payment methods shared by sales and purchases.
const (
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusPending = "Pending"

	PaymentCash = "Cash"
	PaymentBank = "Bank"
)

// InvoicePrefix marks invoice numbers synthesized on the client.
const InvoicePrefix = "INV-"

// LineItem is one row of a sale or purchase invoice.
type LineItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Ctn         int64   `json:"ctn"`
	Pieces      int64   `json:"pieces"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// SaleItem and PurchaseItem share the line item shape on the wire.
type (
	SaleItem     = LineItem
	PurchaseItem = LineItem
)

// NewInvoiceNo returns a lexically sortable placeholder invoice number.
// The server replaces it with its own numbering on create.
func NewInvoiceNo(now time.Time) string {
	return InvoicePrefix + ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
}

// ItemsTotal sums the line totals of an invoice.
func ItemsTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Total
	}
	return total
}
