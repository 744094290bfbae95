package validators

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pos-client/models"
)

const (
	FieldID            = "id"
	FieldName          = "name"
	FieldStatus        = "status"
	FieldPhone         = "phone"
	FieldBalance       = "balance"
	FieldPrice         = "price"
	FieldPieces        = "pieces"
	FieldCategory      = "category"
	FieldProduct       = "product"
	FieldParty         = "party"
	FieldDate          = "date"
	FieldPaymentMethod = "payment_method"
	FieldItems         = "items"
	FieldTotal         = "total"
)

// totalTolerance absorbs float rounding of summed line totals.
const totalTolerance = 0.005

var allowedPaymentMethods = []string{models.PaymentCash, models.PaymentBank}

type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case int64:
		return validateID(value)

	case models.CustomerInput:
		return v.validateParty(ctx, models.CustomerSchema, value.Name, value.Phone, value.Balance, value.Status, fields...)
	case *models.CustomerInput:
		return v.validateParty(ctx, models.CustomerSchema, value.Name, value.Phone, value.Balance, value.Status, fields...)

	case models.SupplierInput:
		return v.validateParty(ctx, models.SupplierSchema, value.Name, value.Phone, value.Balance, value.Status, fields...)
	case *models.SupplierInput:
		return v.validateParty(ctx, models.SupplierSchema, value.Name, value.Phone, value.Balance, value.Status, fields...)

	case models.BrandInput:
		return v.validateBrand(ctx, value, fields...)
	case *models.BrandInput:
		return v.validateBrand(ctx, *value, fields...)

	case models.CategoryInput:
		return v.validateCategory(ctx, value, fields...)
	case *models.CategoryInput:
		return v.validateCategory(ctx, *value, fields...)

	case models.ProductInput:
		return v.validateProduct(ctx, value, fields...)
	case *models.ProductInput:
		return v.validateProduct(ctx, *value, fields...)

	case models.VariationInput:
		return v.validateVariation(ctx, value, fields...)
	case *models.VariationInput:
		return v.validateVariation(ctx, *value, fields...)

	case models.SaleInput:
		return v.validateInvoice(ctx, models.SaleSchema, invoiceOf(value), fields...)
	case *models.SaleInput:
		return v.validateInvoice(ctx, models.SaleSchema, invoiceOf(*value), fields...)

	case models.PurchaseInput:
		return v.validateInvoice(ctx, models.PurchaseSchema, purchaseInvoiceOf(value), fields...)
	case *models.PurchaseInput:
		return v.validateInvoice(ctx, models.PurchaseSchema, purchaseInvoiceOf(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func validateStatus(schema models.EntitySchema, status string) error {
	if !schema.ValidStatus(status) {
		return fmt.Errorf("%w for %s: %q", ErrInvalidStatus, schema.Name, status)
	}
	return nil
}

func isValidPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits > 0
}

func (v *EntityValidator) validateParty(ctx context.Context, schema models.EntitySchema, name, phone, balance, status string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPhone, FieldBalance, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(name); err != nil {
				return err
			}
		case FieldPhone:
			if phone != "" && !isValidPhone(phone) {
				return fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
			}
		case FieldBalance:
			if balance == "" {
				continue
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(balance), 64); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidBalance, balance)
			}
		case FieldStatus:
			if err := validateStatus(schema, status); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *EntityValidator) validateBrand(ctx context.Context, input models.BrandInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(input.Name); err != nil {
				return err
			}
		case FieldStatus:
			if err := validateStatus(models.BrandSchema, input.Status); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// Categories may exist without a brand.
func (v *EntityValidator) validateCategory(ctx context.Context, input models.CategoryInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(input.Name); err != nil {
				return err
			}
		case FieldStatus:
			if err := validateStatus(models.CategorySchema, input.Status); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *EntityValidator) validateProduct(ctx context.Context, input models.ProductInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCategory, FieldPrice, FieldPieces, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(input.Name); err != nil {
				return err
			}
		case FieldCategory:
			if strings.TrimSpace(input.CategoryAssigned) == "" {
				return ErrEmptyCategory
			}
		case FieldPrice:
			if input.Price < 0 || math.IsNaN(input.Price) {
				return ErrInvalidPrice
			}
		case FieldPieces:
			if input.Pieces < 0 {
				return ErrInvalidPieces
			}
		case FieldStatus:
			if err := validateStatus(models.ProductSchema, input.Status); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *EntityValidator) validateVariation(ctx context.Context, input models.VariationInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldProduct, FieldPrice, FieldPieces, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(input.Name); err != nil {
				return err
			}
		case FieldProduct:
			if strings.TrimSpace(input.ProductAssigned) == "" {
				return ErrEmptyProduct
			}
		case FieldPrice:
			if input.Price < 0 || math.IsNaN(input.Price) {
				return ErrInvalidPrice
			}
		case FieldPieces:
			if input.Pieces < 0 {
				return ErrInvalidPieces
			}
		case FieldStatus:
			if err := validateStatus(models.VariationSchema, input.Status); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// invoice is the part of SaleInput and PurchaseInput that is validated.
type invoice struct {
	partyID       int64
	date          string
	status        string
	paymentMethod string
	items         []models.LineItem
	total         float64
}

func invoiceOf(in models.SaleInput) invoice {
	return invoice{in.CustomerID, in.Date, in.Status, in.PaymentMethod, in.Items, in.Total}
}

func purchaseInvoiceOf(in models.PurchaseInput) invoice {
	return invoice{in.SupplierID, in.Date, in.Status, in.PaymentMethod, in.Items, in.Total}
}

func (v *EntityValidator) validateInvoice(ctx context.Context, schema models.EntitySchema, inv invoice, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldParty, FieldDate, FieldStatus, FieldPaymentMethod, FieldItems, FieldTotal}
	}

	for _, f := range fields {
		switch f {
		case FieldParty:
			if inv.partyID <= 0 {
				return ErrInvalidParty
			}
		case FieldDate:
			if _, err := time.Parse(time.DateOnly, inv.date); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidDate, inv.date)
			}
		case FieldStatus:
			if err := validateStatus(schema, inv.status); err != nil {
				return err
			}
		case FieldPaymentMethod:
			if !isValidPaymentMethod(inv.paymentMethod) {
				return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, inv.paymentMethod)
			}
		case FieldItems:
			if err := validateItems(inv.items); err != nil {
				return err
			}
		case FieldTotal:
			if math.Abs(models.ItemsTotal(inv.items)-inv.total) > totalTolerance {
				return fmt.Errorf("%w: items sum to %.2f, total is %.2f", ErrTotalMismatch, models.ItemsTotal(inv.items), inv.total)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func isValidPaymentMethod(method string) bool {
	for _, m := range allowedPaymentMethods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

func validateItems(items []models.LineItem) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	for i, it := range items {
		switch {
		case it.ProductID <= 0:
			return fmt.Errorf("%w #%d: product ID must be positive", ErrInvalidItem, i+1)
		case it.Quantity <= 0:
			return fmt.Errorf("%w #%d: quantity must be positive", ErrInvalidItem, i+1)
		case it.Ctn < 0 || it.Pieces < 0:
			return fmt.Errorf("%w #%d: cartons and pieces cannot be negative", ErrInvalidItem, i+1)
		case it.Price < 0 || it.Total < 0:
			return fmt.Errorf("%w #%d: price and total cannot be negative", ErrInvalidItem, i+1)
		}
	}
	return nil
}
