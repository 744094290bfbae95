package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID            = errors.New("invalid record ID")
	ErrEmptyName            = errors.New("name is required")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrInvalidBalance       = errors.New("balance must be a number")
	ErrInvalidPrice         = errors.New("price cannot be negative")
	ErrInvalidPieces        = errors.New("pieces cannot be negative")
	ErrEmptyCategory        = errors.New("category is required")
	ErrEmptyProduct         = errors.New("product is required")
	ErrInvalidParty         = errors.New("invalid customer or supplier ID")
	ErrInvalidDate          = errors.New("date must be YYYY-MM-DD")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrEmptyItems           = errors.New("invoice must have at least one item")
	ErrInvalidItem          = errors.New("invalid invoice item")
	ErrTotalMismatch        = errors.New("invoice total does not match its items")

	ErrInvalidPage          = errors.New("page cannot be negative")
	ErrInvalidPageSize      = errors.New("page size out of range")
	ErrUnknownStatusLabel   = errors.New("unknown status filter")
	ErrInvalidDateRange     = errors.New("start date is after end date")
	ErrDateRangeUnsupported = errors.New("entity cannot be filtered by date")
	ErrInvalidOrderBy       = errors.New("invalid order by")
)
