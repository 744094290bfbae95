package models

// Summary is the offline dashboard computed from the local mirrors.
type Summary struct {
	Customers  int
	Suppliers  int
	Brands     int
	Categories int
	Products   int
	Variations int

	Sales     InvoiceSummary
	Purchases InvoiceSummary

	// LowStock lists active products whose stock is below the threshold,
	// lowest stock first.
	LowStock []Product
}

// InvoiceSummary aggregates sales or purchases.
type InvoiceSummary struct {
	Count           int
	Total           float64
	ByStatus        map[string]float64
	ByPaymentMethod map[string]float64
}
