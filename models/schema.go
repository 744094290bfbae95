// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// StatusLabel maps a filter label shown to the user to the status value the
// server filters by. An empty Value means no filter.
type StatusLabel struct {
	Label string
	Value string
}

// EntitySchema describes how one entity type is exposed by the remote
// GraphQL API and stored in the local mirror.
type EntitySchema struct {
	// Name is the plural display name, e.g. "Customers".
	Name string
	// Entity is the singular type name used in mutation names, e.g. "Customer".
	Entity string
	// Table is the mirror table name.
	Table string

	ListField string
	// IDField is both the id attribute of the record and the id argument of
	// update and delete mutations.
	IDField         string
	CreateInputType string
	UpdateInputType string
	DeleteField     string

	// Selection is the GraphQL selection set of one record.
	Selection       string
	DeleteSelection string

	// SortFields maps an order-by path to the server field name. Entities
	// with no sortable fields reject any ordering.
	SortFields map[string]string

	StatusLabels []StatusLabel
	// Statuses are the values accepted in mutation inputs.
	Statuses []string

	SupportsPaymentMethod bool
	SupportsDateRange     bool
}

func (s EntitySchema) CreateField() string { return "create" + s.Entity }
func (s EntitySchema) UpdateField() string { return "update" + s.Entity }
func (s EntitySchema) CreateArg() string   { return "create" + s.Entity + "Input" }
func (s EntitySchema) UpdateArg() string   { return "update" + s.Entity + "Input" }

// StatusValue resolves a filter label. Unknown labels are reported with ok
// false; "All" and the empty label resolve to no filter.
func (s EntitySchema) StatusValue(label string) (value string, ok bool) {
	if label == "" || label == StatusAll {
		return "", true
	}
	for _, l := range s.StatusLabels {
		if l.Label == label {
			return l.Value, true
		}
	}
	return "", false
}

// Labels returns the filter labels in display order.
func (s EntitySchema) Labels() []string {
	labels := make([]string, 0, len(s.StatusLabels))
	for _, l := range s.StatusLabels {
		labels = append(labels, l.Label)
	}
	return labels
}

// ValidStatus reports whether status is accepted in a mutation input.
func (s EntitySchema) ValidStatus(status string) bool {
	for _, st := range s.Statuses {
		if strings.EqualFold(st, status) {
			return true
		}
	}
	return false
}

const (
	partySelection   = "name phone balance status createdAt"
	itemsSelection   = "items { productId productName ctn pieces quantity price total }"
	invoiceSelection = "invoiceNo date status createdAt paymentMethod notes total " + itemsSelection
)

var catalogLabels = []StatusLabel{
	{Label: StatusAll},
	{Label: StatusActive, Value: StatusActive},
	{Label: StatusInactive, Value: StatusInactive},
}

var invoiceLabels = []StatusLabel{
	{Label: StatusAll},
	{Label: InvoiceStatusPaid, Value: InvoiceStatusPaid},
	{Label: InvoiceStatusPending, Value: InvoiceStatusPending},
}

var invoiceSortFields = map[string]string{
	"created_at": "createdAt",
	"date":       "date",
	"total":      "total",
	"invoice_no": "invoiceNo",
}

var (
	CustomerSchema = EntitySchema{
		Name: "Customers", Entity: "Customer", Table: "customers",
		ListField: "customersPaginated", IDField: "customerId",
		CreateInputType: "CreateCustomerInput", UpdateInputType: "CreateCustomerInput",
		DeleteField: "removeCustomer",
		Selection:   "customerId " + partySelection, DeleteSelection: "customerId",
		StatusLabels: []StatusLabel{
			{Label: StatusAll},
			{Label: "Pending Payments", Value: CustomerStatusPending},
			{Label: "Received Payments", Value: CustomerStatusReceived},
		},
		Statuses:          []string{CustomerStatusPending, CustomerStatusReceived},
		SupportsDateRange: true,
	}

	SupplierSchema = EntitySchema{
		Name: "Suppliers", Entity: "Supplier", Table: "suppliers",
		ListField: "suppliersPaginated", IDField: "supplierId",
		CreateInputType: "CreateSupplierInput", UpdateInputType: "CreateSupplierInput",
		DeleteField: "removeSupplier",
		Selection:   "supplierId " + partySelection, DeleteSelection: "supplierId",
		StatusLabels: []StatusLabel{
			{Label: StatusAll},
			{Label: SupplierStatusDue, Value: SupplierStatusDue},
			{Label: SupplierStatusPaid, Value: SupplierStatusPaid},
		},
		Statuses:          []string{SupplierStatusDue, SupplierStatusPaid},
		SupportsDateRange: true,
	}

	BrandSchema = EntitySchema{
		Name: "Brands", Entity: "Brand", Table: "brands",
		ListField: "brandsPaginated", IDField: "brandId",
		CreateInputType: "CreateBrandInput", UpdateInputType: "CreateBrandInput",
		DeleteField: "removeBrand",
		Selection:   "brandId name status createdAt", DeleteSelection: "brandId",
		StatusLabels:      catalogLabels,
		Statuses:          []string{StatusActive, StatusInactive},
		SupportsDateRange: true,
	}

	CategorySchema = EntitySchema{
		Name: "Categories", Entity: "Category", Table: "categories",
		ListField: "categoriesPaginated", IDField: "categoryId",
		CreateInputType: "CreateCategoryInput", UpdateInputType: "CreateCategoryInput",
		DeleteField: "removeCategory",
		Selection:   "categoryId name brandAssigned status createdAt", DeleteSelection: "categoryId",
		StatusLabels:      catalogLabels,
		Statuses:          []string{StatusActive, StatusInactive},
		SupportsDateRange: true,
	}

	ProductSchema = EntitySchema{
		Name: "Products", Entity: "Product", Table: "products",
		ListField: "productsPaginated", IDField: "productId",
		CreateInputType: "CreateProductInput", UpdateInputType: "CreateProductInput",
		DeleteField: "removeProduct",
		Selection:   "productId name categoryAssigned price pieces status createdAt", DeleteSelection: "productId",
		StatusLabels:      catalogLabels,
		Statuses:          []string{StatusActive, StatusInactive},
		SupportsDateRange: true,
	}

	VariationSchema = EntitySchema{
		Name: "Variations", Entity: "Variation", Table: "variations",
		ListField: "variationsPaginated", IDField: "variationId",
		CreateInputType: "CreateVariationInput", UpdateInputType: "CreateVariationInput",
		DeleteField: "removeVariation",
		Selection:   "variationId name productAssigned pieces price status createdAt", DeleteSelection: "variationId",
		StatusLabels: catalogLabels,
		Statuses:     []string{StatusActive, StatusInactive},
	}

	SaleSchema = EntitySchema{
		Name: "Sales", Entity: "Sale", Table: "sales",
		ListField: "getSalesPaginated", IDField: "saleId",
		CreateInputType: "CreateSaleInput", UpdateInputType: "UpdateSaleInput",
		DeleteField: "deleteSale",
		Selection:   "saleId customerId " + invoiceSelection, DeleteSelection: "success message",
		SortFields:            invoiceSortFields,
		StatusLabels:          invoiceLabels,
		Statuses:              []string{InvoiceStatusPaid, InvoiceStatusPending},
		SupportsPaymentMethod: true,
		SupportsDateRange:     true,
	}

	PurchaseSchema = EntitySchema{
		Name: "Purchases", Entity: "Purchase", Table: "purchases",
		ListField: "getPurchasesPaginated", IDField: "purchaseId",
		CreateInputType: "CreatePurchaseInput", UpdateInputType: "UpdatePurchaseInput",
		DeleteField: "deletePurchase",
		Selection:   "purchaseId supplierId " + invoiceSelection, DeleteSelection: "success message",
		SortFields:            invoiceSortFields,
		StatusLabels:          invoiceLabels,
		Statuses:              []string{InvoiceStatusPaid, InvoiceStatusPending},
		SupportsPaymentMethod: true,
		SupportsDateRange:     true,
	}
)

// Schemas lists every entity in tab order.
func Schemas() []EntitySchema {
	return []EntitySchema{
		CustomerSchema, SupplierSchema, BrandSchema, CategorySchema,
		ProductSchema, VariationSchema, SaleSchema, PurchaseSchema,
	}
}
