package adapter

import (
	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/models"
)

// ServerAdapters groups the remote API of every entity, all sharing one
// [GraphQLClient].
type ServerAdapters struct {
	Customers  EntityAdapter[models.Customer, models.CustomerInput]
	Suppliers  EntityAdapter[models.Supplier, models.SupplierInput]
	Brands     EntityAdapter[models.Brand, models.BrandInput]
	Categories EntityAdapter[models.Category, models.CategoryInput]
	Products   EntityAdapter[models.Product, models.ProductInput]
	Variations EntityAdapter[models.Variation, models.VariationInput]
	Sales      EntityAdapter[models.Sale, models.SaleInput]
	Purchases  EntityAdapter[models.Purchase, models.PurchaseInput]
}

func NewServerAdapters(client GraphQLClient, log *logger.Logger) *ServerAdapters {
	return &ServerAdapters{
		Customers:  NewEntityAdapter[models.Customer, models.CustomerInput](client, models.CustomerSchema, log),
		Suppliers:  NewEntityAdapter[models.Supplier, models.SupplierInput](client, models.SupplierSchema, log),
		Brands:     NewEntityAdapter[models.Brand, models.BrandInput](client, models.BrandSchema, log),
		Categories: NewEntityAdapter[models.Category, models.CategoryInput](client, models.CategorySchema, log),
		Products:   NewEntityAdapter[models.Product, models.ProductInput](client, models.ProductSchema, log),
		Variations: NewEntityAdapter[models.Variation, models.VariationInput](client, models.VariationSchema, log),
		Sales:      NewEntityAdapter[models.Sale, models.SaleInput](client, models.SaleSchema, log),
		Purchases:  NewEntityAdapter[models.Purchase, models.PurchaseInput](client, models.PurchaseSchema, log),
	}
}
