package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pos-client/models"
)

const lowStockRows = 10

func renderSummaryWindow(s models.Summary, loading bool) string {
	if loading {
		return renderPage("SUMMARY", "loading...", "esc: back")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Customers: %d   Suppliers: %d\n", s.Customers, s.Suppliers)
	fmt.Fprintf(&b, "Brands: %d      Categories: %d\n", s.Brands, s.Categories)
	fmt.Fprintf(&b, "Products: %d    Variations: %d\n\n", s.Products, s.Variations)
	writeInvoiceSummary(&b, "Sales", s.Sales)
	b.WriteString("\n")
	writeInvoiceSummary(&b, "Purchases", s.Purchases)

	b.WriteString("\nLow stock:\n")
	if len(s.LowStock) == 0 {
		b.WriteString("  -\n")
	}
	for i, p := range s.LowStock {
		if i == lowStockRows {
			fmt.Fprintf(&b, "  ... and %d more\n", len(s.LowStock)-lowStockRows)
			break
		}
		fmt.Fprintf(&b, "  %-24s %5d pcs\n", fitText(p.Name, 24), p.Pieces)
	}
	b.WriteString(helpStyle.Render("\ncomputed from saved records"))

	return renderPage("SUMMARY", b.String(), "esc: back")
}

func writeInvoiceSummary(b *strings.Builder, title string, s models.InvoiceSummary) {
	fmt.Fprintf(b, "%s: %d invoices, %s total\n", title, s.Count, formatMoney(s.Total))
	writeBreakdown(b, "by status", s.ByStatus)
	writeBreakdown(b, "by payment", s.ByPaymentMethod)
}

func writeBreakdown(b *strings.Builder, title string, values map[string]float64) {
	if len(values) == 0 {
		return
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+formatMoney(values[name]))
	}
	fmt.Fprintf(b, "  %s: %s\n", title, strings.Join(parts, ", "))
}
