// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pos-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSaleInput() models.SaleInput {
	return models.SaleInput{
		CustomerID:    1,
		InvoiceNo:     "INV-1",
		Date:          "2026-03-01",
		Status:        models.InvoiceStatusPaid,
		PaymentMethod: models.PaymentCash,
		Items: []models.SaleItem{
			{ProductID: 4, ProductName: "Tea", Pieces: 2, Quantity: 2, Price: 10, Total: 20},
			{ProductID: 5, ProductName: "Sugar", Ctn: 1, Quantity: 1, Price: 5.5, Total: 5.5},
		},
		Total: 25.5,
	}
}

func validProductInput() models.ProductInput {
	return models.ProductInput{Name: "Tea", CategoryAssigned: "Drinks", Price: 10, Pieces: 40, Status: models.StatusActive}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewEntityValidator(t *testing.T) {
	v := NewEntityValidator()
	require.NotNil(t, v)
	_, ok := v.(*EntityValidator)
	assert.True(t, ok)
}

func TestEntityValidate_Dispatch(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	valid := []any{
		int64(3),
		models.CustomerInput{Name: "Ali", Phone: "+1 (555) 010-2000", Balance: "12.5", Status: models.CustomerStatusPending},
		&models.SupplierInput{Name: "Acme", Status: models.SupplierStatusDue},
		models.BrandInput{Name: "Lipton", Status: models.StatusActive},
		&models.CategoryInput{Name: "Drinks", Status: models.StatusInactive},
		validProductInput(),
		models.VariationInput{Name: "Large", ProductAssigned: "Tea", Pieces: 1, Price: 12, Status: models.StatusActive},
		validSaleInput(),
		models.PurchaseInput{
			SupplierID: 2, Date: "2026-03-02", Status: models.InvoiceStatusPending, PaymentMethod: models.PaymentBank,
			Items: []models.PurchaseItem{{ProductID: 4, Quantity: 10, Price: 3, Total: 30}}, Total: 30,
		},
	}
	for _, obj := range valid {
		assert.NoError(t, v.Validate(ctx, obj), "%T", obj)
	}

	assert.ErrorIs(t, v.Validate(ctx, "customer"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.Customer{}), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Entities
// ---------------------------------------------------------------------------

func TestValidateID(t *testing.T) {
	v := NewEntityValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), int64(0)), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(context.Background(), int64(-4)), ErrInvalidID)
}

func TestValidateParty(t *testing.T) {
	tests := []struct {
		name  string
		input models.CustomerInput
		want  error
	}{
		{"empty name", models.CustomerInput{Name: "  ", Status: models.CustomerStatusPending}, ErrEmptyName},
		{"letters in phone", models.CustomerInput{Name: "Ali", Phone: "call me", Status: models.CustomerStatusPending}, ErrInvalidPhone},
		{"non-numeric balance", models.CustomerInput{Name: "Ali", Balance: "lots", Status: models.CustomerStatusPending}, ErrInvalidBalance},
		{"supplier status on customer", models.CustomerInput{Name: "Ali", Status: models.SupplierStatusDue}, ErrInvalidStatus},
		{"missing status", models.CustomerInput{Name: "Ali"}, ErrInvalidStatus},
	}
	v := NewEntityValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.Validate(context.Background(), tt.input), tt.want)
		})
	}
}

func TestValidateParty_StatusCaseInsensitive(t *testing.T) {
	err := NewEntityValidator().Validate(context.Background(), models.SupplierInput{Name: "Acme", Status: "paid"})
	assert.NoError(t, err)
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ProductInput)
		want   error
	}{
		{"no category", func(p *models.ProductInput) { p.CategoryAssigned = "" }, ErrEmptyCategory},
		{"negative price", func(p *models.ProductInput) { p.Price = -1 }, ErrInvalidPrice},
		{"negative pieces", func(p *models.ProductInput) { p.Pieces = -1 }, ErrInvalidPieces},
		{"invoice status", func(p *models.ProductInput) { p.Status = models.InvoiceStatusPaid }, ErrInvalidStatus},
	}
	v := NewEntityValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			tt.mutate(&input)
			assert.ErrorIs(t, v.Validate(context.Background(), input), tt.want)
		})
	}
}

func TestValidateVariation_NoProduct(t *testing.T) {
	err := NewEntityValidator().Validate(context.Background(),
		models.VariationInput{Name: "Large", Status: models.StatusActive})
	assert.ErrorIs(t, err, ErrEmptyProduct)
}

func TestValidateInvoice(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.SaleInput)
		want   error
	}{
		{"no customer", func(s *models.SaleInput) { s.CustomerID = 0 }, ErrInvalidParty},
		{"bad date", func(s *models.SaleInput) { s.Date = "01/03/2026" }, ErrInvalidDate},
		{"bad status", func(s *models.SaleInput) { s.Status = models.StatusActive }, ErrInvalidStatus},
		{"bad payment", func(s *models.SaleInput) { s.PaymentMethod = "Crypto" }, ErrInvalidPaymentMethod},
		{"no items", func(s *models.SaleInput) { s.Items = nil; s.Total = 0 }, ErrEmptyItems},
		{"zero quantity", func(s *models.SaleInput) { s.Items[0].Quantity = 0 }, ErrInvalidItem},
		{"no product", func(s *models.SaleInput) { s.Items[1].ProductID = 0 }, ErrInvalidItem},
		{"negative price", func(s *models.SaleInput) { s.Items[1].Price = -2 }, ErrInvalidItem},
		{"total mismatch", func(s *models.SaleInput) { s.Total = 30 }, ErrTotalMismatch},
	}
	v := NewEntityValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSaleInput()
			tt.mutate(&input)
			assert.ErrorIs(t, v.Validate(context.Background(), input), tt.want)
		})
	}
}

func TestValidateInvoice_TotalTolerance(t *testing.T) {
	input := validSaleInput()
	input.Total = 25.501

	assert.NoError(t, NewEntityValidator().Validate(context.Background(), &input))
}

func TestValidateInvoice_SelectedFields(t *testing.T) {
	input := validSaleInput()
	input.Items = nil

	v := NewEntityValidator()
	assert.NoError(t, v.Validate(context.Background(), input, FieldParty, FieldDate))
	assert.ErrorIs(t, v.Validate(context.Background(), input, FieldItems), ErrEmptyItems)
	assert.ErrorIs(t, v.Validate(context.Background(), input, "discount"), ErrUnknownField)
}
