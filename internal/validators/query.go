package validators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pos-client/models"
)

const (
	FieldPage      = "page"
	FieldPageSize  = "page_size"
	FieldDateRange = "date_range"
	FieldOrderBy   = "order_by"
)

// QueryValidator checks a list configuration against what the entity's
// list endpoint accepts.
type QueryValidator struct {
	schema models.EntitySchema
}

func NewQueryValidator(schema models.EntitySchema) Validator {
	return &QueryValidator{schema: schema}
}

func (v *QueryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Query:
		return v.validateQuery(ctx, value, fields...)
	case *models.Query:
		return v.validateQuery(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *QueryValidator) validateQuery(ctx context.Context, q models.Query, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldPageSize, FieldStatus, FieldPaymentMethod, FieldDateRange, FieldOrderBy}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if q.Page < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidPage, q.Page)
			}
		case FieldPageSize:
			if q.PageSize < models.MinPageSize || q.PageSize > models.MaxPageSize {
				return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidPageSize, q.PageSize, models.MinPageSize, models.MaxPageSize)
			}
		case FieldStatus:
			if _, ok := v.schema.StatusValue(q.Status); !ok {
				return fmt.Errorf("%w for %s: %q", ErrUnknownStatusLabel, v.schema.Name, q.Status)
			}
		case FieldPaymentMethod:
			if q.PaymentMethod == "" {
				continue
			}
			if !v.schema.SupportsPaymentMethod || !isValidPaymentMethod(q.PaymentMethod) {
				return fmt.Errorf("%w for %s: %q", ErrInvalidPaymentMethod, v.schema.Name, q.PaymentMethod)
			}
		case FieldDateRange:
			if err := v.validateDateRange(q.StartDate, q.EndDate); err != nil {
				return err
			}
		case FieldOrderBy:
			if _, err := v.schema.SortInput(q.OrderBy); err != nil {
				return errors.Join(ErrInvalidOrderBy, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validateDateRange accepts open-ended ranges; either bound may be empty.
func (v *QueryValidator) validateDateRange(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	if !v.schema.SupportsDateRange {
		return fmt.Errorf("%w: %s", ErrDateRangeUnsupported, v.schema.Name)
	}

	var from, to time.Time
	var err error
	if start != "" {
		if from, err = time.Parse(time.DateOnly, start); err != nil {
			return fmt.Errorf("%w: start %q", ErrInvalidDate, start)
		}
	}
	if end != "" {
		if to, err = time.Parse(time.DateOnly, end); err != nil {
			return fmt.Errorf("%w: end %q", ErrInvalidDate, end)
		}
	}
	if start != "" && end != "" && from.After(to) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, start, end)
	}
	return nil
}
