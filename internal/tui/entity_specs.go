package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pos-client/models"
)

// column renders one table column of T.
type column[T any] struct {
	title string
	width int
	value func(T) string
}

// entitySpec is everything the generic list tab needs to know about one
// entity: how to show a record and how to edit one.
type entitySpec[T models.Entity, I any] struct {
	columns []column[T]
	fields  []formField
	// values fills the form from a record; nil values start an empty form.
	values  func(T) []string
	toInput func(values []string, now time.Time) (I, error)
	// label names a record in confirmations.
	label func(T) string
}

func idColumn[T models.Entity]() column[T] {
	return column[T]{title: "ID", width: 6, value: func(r T) string { return strconv.FormatInt(r.EntityID(), 10) }}
}

func statusColumn[T models.Entity]() column[T] {
	return column[T]{title: "Status", width: 10, value: func(r T) string { return r.EntityStatus() }}
}

func createdColumn[T models.Entity]() column[T] {
	return column[T]{title: "Created", width: 16, value: func(r T) string {
		t := r.CreatedTime()
		if t.IsZero() {
			return "-"
		}
		return t.Local().Format("2006-01-02 15:04")
	}}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseFloat(label, v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w in %s: %q", errInvalidNumber, label, v)
	}
	return f, nil
}

func parseInt(label, v string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w in %s: %q", errInvalidNumber, label, v)
	}
	return n, nil
}

// parseItems reads "productId:quantity:price" entries separated by commas.
// Each item total is quantity times price.
func parseItems(v string) ([]models.LineItem, error) {
	var items []models.LineItem
	for _, raw := range strings.Split(v, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.Split(raw, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", errInvalidItem, raw)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidItem, raw)
		}
		qty, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidItem, raw)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidItem, raw)
		}
		items = append(items, models.LineItem{
			ProductID: id,
			Quantity:  qty,
			Pieces:    qty,
			Price:     price,
			Total:     float64(qty) * price,
		})
	}
	return items, nil
}

func formatItems(items []models.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%d:%d:%s", it.ProductID, it.Quantity, strconv.FormatFloat(it.Price, 'f', -1, 64)))
	}
	return strings.Join(parts, ", ")
}

// parseDateRange reads "FROM..TO" where either side may be empty. An empty
// string clears the range.
func parseDateRange(v string) (start, end string, err error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", "", nil
	}
	from, to, ok := strings.Cut(v, "..")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", errInvalidDateRange, v)
	}
	return strings.TrimSpace(from), strings.TrimSpace(to), nil
}

// parseColumnFilters reads "column=term" pairs separated by commas.
func parseColumnFilters(v string, allowed []string) (map[string]string, error) {
	filters := make(map[string]string)
	for _, raw := range strings.Split(v, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		col, term, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errInvalidFilter, raw)
		}
		col = strings.ToLower(strings.TrimSpace(col))
		if !containsFold(allowed, col) {
			return nil, fmt.Errorf("%w: %q", errUnknownColumn, col)
		}
		filters[col] = strings.TrimSpace(term)
	}
	return filters, nil
}

func containsFold(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// ── parties ──────────────────────────────────────────────────────────────────

var partyFields = []formField{
	{label: "Name"},
	{label: "Phone", placeholder: "+1 555 0100"},
	{label: "Balance", placeholder: "0.00"},
	{label: "Status"},
}

var customerSpec = entitySpec[models.Customer, models.CustomerInput]{
	columns: []column[models.Customer]{
		idColumn[models.Customer](),
		{title: "Name", width: 22, value: func(c models.Customer) string { return c.Name }},
		{title: "Phone", width: 14, value: func(c models.Customer) string { return c.Phone }},
		{title: "Balance", width: 10, value: func(c models.Customer) string { return c.Balance }},
		statusColumn[models.Customer](),
		createdColumn[models.Customer](),
	},
	fields: withPlaceholder(partyFields, 3, models.CustomerStatusPending+" | "+models.CustomerStatusReceived),
	values: func(c models.Customer) []string { return []string{c.Name, c.Phone, c.Balance, c.Status} },
	toInput: func(v []string, _ time.Time) (models.CustomerInput, error) {
		return models.CustomerInput{Name: v[0], Phone: v[1], Balance: v[2], Status: defaultString(v[3], models.CustomerStatusPending)}, nil
	},
	label: func(c models.Customer) string { return c.Name },
}

var supplierSpec = entitySpec[models.Supplier, models.SupplierInput]{
	columns: []column[models.Supplier]{
		idColumn[models.Supplier](),
		{title: "Name", width: 22, value: func(s models.Supplier) string { return s.Name }},
		{title: "Phone", width: 14, value: func(s models.Supplier) string { return s.Phone }},
		{title: "Balance", width: 10, value: func(s models.Supplier) string { return s.Balance }},
		statusColumn[models.Supplier](),
		createdColumn[models.Supplier](),
	},
	fields: withPlaceholder(partyFields, 3, models.SupplierStatusDue+" | "+models.SupplierStatusPaid),
	values: func(s models.Supplier) []string { return []string{s.Name, s.Phone, s.Balance, s.Status} },
	toInput: func(v []string, _ time.Time) (models.SupplierInput, error) {
		return models.SupplierInput{Name: v[0], Phone: v[1], Balance: v[2], Status: defaultString(v[3], models.SupplierStatusDue)}, nil
	},
	label: func(s models.Supplier) string { return s.Name },
}

func withPlaceholder(fields []formField, i int, placeholder string) []formField {
	out := append([]formField(nil), fields...)
	out[i].placeholder = placeholder
	return out
}

// ── catalog ──────────────────────────────────────────────────────────────────

const catalogStatuses = models.StatusActive + " | " + models.StatusInactive

var brandSpec = entitySpec[models.Brand, models.BrandInput]{
	columns: []column[models.Brand]{
		idColumn[models.Brand](),
		{title: "Name", width: 30, value: func(b models.Brand) string { return b.Name }},
		statusColumn[models.Brand](),
		createdColumn[models.Brand](),
	},
	fields: []formField{{label: "Name"}, {label: "Status", placeholder: catalogStatuses}},
	values: func(b models.Brand) []string { return []string{b.Name, b.Status} },
	toInput: func(v []string, _ time.Time) (models.BrandInput, error) {
		return models.BrandInput{Name: v[0], Status: defaultString(v[1], models.StatusActive)}, nil
	},
	label: func(b models.Brand) string { return b.Name },
}

var categorySpec = entitySpec[models.Category, models.CategoryInput]{
	columns: []column[models.Category]{
		idColumn[models.Category](),
		{title: "Name", width: 24, value: func(c models.Category) string { return c.Name }},
		{title: "Brand", width: 18, value: func(c models.Category) string { return valueOrDash(c.BrandAssigned) }},
		statusColumn[models.Category](),
		createdColumn[models.Category](),
	},
	fields: []formField{{label: "Name"}, {label: "Brand"}, {label: "Status", placeholder: catalogStatuses}},
	values: func(c models.Category) []string { return []string{c.Name, c.BrandAssigned, c.Status} },
	toInput: func(v []string, _ time.Time) (models.CategoryInput, error) {
		return models.CategoryInput{Name: v[0], BrandAssigned: v[1], Status: defaultString(v[2], models.StatusActive)}, nil
	},
	label: func(c models.Category) string { return c.Name },
}

var productSpec = entitySpec[models.Product, models.ProductInput]{
	columns: []column[models.Product]{
		idColumn[models.Product](),
		{title: "Name", width: 22, value: func(p models.Product) string { return p.Name }},
		{title: "Category", width: 16, value: func(p models.Product) string { return p.CategoryAssigned }},
		{title: "Price", width: 10, value: func(p models.Product) string { return formatMoney(p.Price) }},
		{title: "Pieces", width: 7, value: func(p models.Product) string { return strconv.FormatInt(p.Pieces, 10) }},
		statusColumn[models.Product](),
	},
	fields: []formField{
		{label: "Name"}, {label: "Category"}, {label: "Price", placeholder: "0.00"},
		{label: "Pieces", placeholder: "0"}, {label: "Status", placeholder: catalogStatuses},
	},
	values: func(p models.Product) []string {
		return []string{p.Name, p.CategoryAssigned, formatMoney(p.Price), strconv.FormatInt(p.Pieces, 10), p.Status}
	},
	toInput: func(v []string, _ time.Time) (models.ProductInput, error) {
		price, err := parseFloat("price", v[2])
		if err != nil {
			return models.ProductInput{}, err
		}
		pieces, err := parseInt("pieces", v[3])
		if err != nil {
			return models.ProductInput{}, err
		}
		return models.ProductInput{
			Name: v[0], CategoryAssigned: v[1], Price: price, Pieces: pieces,
			Status: defaultString(v[4], models.StatusActive),
		}, nil
	},
	label: func(p models.Product) string { return p.Name },
}

var variationSpec = entitySpec[models.Variation, models.VariationInput]{
	columns: []column[models.Variation]{
		idColumn[models.Variation](),
		{title: "Name", width: 22, value: func(v models.Variation) string { return v.Name }},
		{title: "Product", width: 16, value: func(v models.Variation) string { return v.ProductAssigned }},
		{title: "Price", width: 10, value: func(v models.Variation) string { return formatMoney(v.Price) }},
		{title: "Pieces", width: 7, value: func(v models.Variation) string { return strconv.FormatInt(v.Pieces, 10) }},
		statusColumn[models.Variation](),
	},
	fields: []formField{
		{label: "Name"}, {label: "Product"}, {label: "Price", placeholder: "0.00"},
		{label: "Pieces", placeholder: "0"}, {label: "Status", placeholder: catalogStatuses},
	},
	values: func(v models.Variation) []string {
		return []string{v.Name, v.ProductAssigned, formatMoney(v.Price), strconv.FormatInt(v.Pieces, 10), v.Status}
	},
	toInput: func(v []string, _ time.Time) (models.VariationInput, error) {
		price, err := parseFloat("price", v[2])
		if err != nil {
			return models.VariationInput{}, err
		}
		pieces, err := parseInt("pieces", v[3])
		if err != nil {
			return models.VariationInput{}, err
		}
		return models.VariationInput{
			Name: v[0], ProductAssigned: v[1], Price: price, Pieces: pieces,
			Status: defaultString(v[4], models.StatusActive),
		}, nil
	},
	label: func(v models.Variation) string { return v.Name },
}

// ── invoices ─────────────────────────────────────────────────────────────────

func invoiceFields(party string) []formField {
	return []formField{
		{label: party + " ID"},
		{label: "Invoice no", placeholder: "generated when empty"},
		{label: "Date", placeholder: "YYYY-MM-DD, today when empty"},
		{label: "Status", placeholder: models.InvoiceStatusPaid + " | " + models.InvoiceStatusPending},
		{label: "Payment", placeholder: models.PaymentCash + " | " + models.PaymentBank},
		{label: "Items", placeholder: "productId:qty:price, ..."},
		{label: "Notes"},
	}
}

// invoiceForm is the parsed form shared by sales and purchases.
type invoiceForm struct {
	partyID       int64
	invoiceNo     string
	date          string
	status        string
	paymentMethod string
	items         []models.LineItem
	notes         string
	total         float64
}

func parseInvoiceForm(v []string, now time.Time) (invoiceForm, error) {
	partyID, err := parseInt("party id", v[0])
	if err != nil {
		return invoiceForm{}, err
	}
	items, err := parseItems(v[5])
	if err != nil {
		return invoiceForm{}, err
	}
	invoiceNo := v[1]
	if invoiceNo == "" {
		invoiceNo = models.NewInvoiceNo(now)
	}
	return invoiceForm{
		partyID:       partyID,
		invoiceNo:     invoiceNo,
		date:          defaultString(v[2], now.Format(time.DateOnly)),
		status:        defaultString(v[3], models.InvoiceStatusPending),
		paymentMethod: defaultString(v[4], models.PaymentCash),
		items:         items,
		notes:         v[6],
		total:         models.ItemsTotal(items),
	}, nil
}

var saleSpec = entitySpec[models.Sale, models.SaleInput]{
	columns: []column[models.Sale]{
		idColumn[models.Sale](),
		{title: "Invoice", width: 16, value: func(s models.Sale) string { return s.InvoiceNo }},
		{title: "Customer", width: 8, value: func(s models.Sale) string { return strconv.FormatInt(s.CustomerID, 10) }},
		{title: "Date", width: 10, value: func(s models.Sale) string { return s.Date }},
		{title: "Payment", width: 8, value: func(s models.Sale) string { return s.PaymentMethod }},
		statusColumn[models.Sale](),
		{title: "Total", width: 10, value: func(s models.Sale) string { return formatMoney(s.Total) }},
	},
	fields: invoiceFields("Customer"),
	values: func(s models.Sale) []string {
		return []string{
			strconv.FormatInt(s.CustomerID, 10), s.InvoiceNo, s.Date, s.Status,
			s.PaymentMethod, formatItems(s.Items), s.Notes,
		}
	},
	toInput: func(v []string, now time.Time) (models.SaleInput, error) {
		f, err := parseInvoiceForm(v, now)
		if err != nil {
			return models.SaleInput{}, err
		}
		return models.SaleInput{
			CustomerID: f.partyID, InvoiceNo: f.invoiceNo, Date: f.date, Status: f.status,
			PaymentMethod: f.paymentMethod, Notes: f.notes, Items: f.items, Total: f.total,
		}, nil
	},
	label: func(s models.Sale) string { return s.InvoiceNo },
}

var purchaseSpec = entitySpec[models.Purchase, models.PurchaseInput]{
	columns: []column[models.Purchase]{
		idColumn[models.Purchase](),
		{title: "Invoice", width: 16, value: func(p models.Purchase) string { return p.InvoiceNo }},
		{title: "Supplier", width: 8, value: func(p models.Purchase) string { return strconv.FormatInt(p.SupplierID, 10) }},
		{title: "Date", width: 10, value: func(p models.Purchase) string { return p.Date }},
		{title: "Payment", width: 8, value: func(p models.Purchase) string { return p.PaymentMethod }},
		statusColumn[models.Purchase](),
		{title: "Total", width: 10, value: func(p models.Purchase) string { return formatMoney(p.Total) }},
	},
	fields: invoiceFields("Supplier"),
	values: func(p models.Purchase) []string {
		return []string{
			strconv.FormatInt(p.SupplierID, 10), p.InvoiceNo, p.Date, p.Status,
			p.PaymentMethod, formatItems(p.Items), p.Notes,
		}
	},
	toInput: func(v []string, now time.Time) (models.PurchaseInput, error) {
		f, err := parseInvoiceForm(v, now)
		if err != nil {
			return models.PurchaseInput{}, err
		}
		return models.PurchaseInput{
			SupplierID: f.partyID, InvoiceNo: f.invoiceNo, Date: f.date, Status: f.status,
			PaymentMethod: f.paymentMethod, Notes: f.notes, Items: f.items, Total: f.total,
		}, nil
	},
	label: func(p models.Purchase) string { return p.InvoiceNo },
}
