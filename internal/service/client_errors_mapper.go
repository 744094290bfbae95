// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pos-client/internal/adapter"
	"github.com/MKhiriev/go-pos-client/internal/app"
	"github.com/MKhiriev/go-pos-client/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrOffline, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrGraphQL),
		errors.Is(err, adapter.ErrDeleteRejected):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return err
}

// isValidationError reports whether err came from a validator.
func isValidationError(err error) bool {
	for _, target := range []error{
		validators.ErrUnsupportedType, validators.ErrUnknownField, validators.ErrInvalidID,
		validators.ErrEmptyName, validators.ErrInvalidStatus, validators.ErrInvalidPhone,
		validators.ErrInvalidBalance, validators.ErrInvalidPrice, validators.ErrInvalidPieces,
		validators.ErrEmptyCategory, validators.ErrEmptyProduct, validators.ErrInvalidParty,
		validators.ErrInvalidDate, validators.ErrInvalidPaymentMethod, validators.ErrEmptyItems,
		validators.ErrInvalidItem, validators.ErrTotalMismatch, validators.ErrInvalidPage,
		validators.ErrInvalidPageSize, validators.ErrUnknownStatusLabel, validators.ErrInvalidDateRange,
		validators.ErrDateRangeUnsupported, validators.ErrInvalidOrderBy,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// UserMessage renders err for the status line.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case isValidationError(err):
		return app.MsgInvalidDataProvided + ": " + err.Error()
	case errors.Is(err, ErrOffline):
		return app.MsgOffline
	case errors.Is(err, ErrSessionExpired):
		return app.MsgTokenIsExpiredOrInvalid
	case errors.Is(err, ErrAccessDenied):
		return app.MsgAccessDenied
	case errors.Is(err, ErrRecordNotFound):
		return app.MsgDataNotFound
	case errors.Is(err, ErrRejected):
		return app.MsgRejectedByServer + ": " + err.Error()
	case errors.Is(err, ErrServerFailure):
		return app.MsgInternalServerError
	default:
		return app.MsgUnexpectedError + ": " + err.Error()
	}
}
