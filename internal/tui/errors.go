// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pos-client/internal/app"
	"github.com/MKhiriev/go-pos-client/internal/service"
)

var (
	ErrUserQuit = errors.New("user quit the program")

	errInvalidNumber    = errors.New("invalid number")
	errInvalidItem      = errors.New("invalid item, expected productId:quantity:price")
	errInvalidDateRange = errors.New("invalid date range, expected FROM..TO")
	errInvalidFilter    = errors.New("invalid column filter, expected column=term")
	errUnknownColumn    = errors.New("unknown column")
)

// errorText renders err for the status line. Input parse errors keep their
// detail like validation errors do.
func errorText(err error) string {
	for _, target := range []error{errInvalidNumber, errInvalidItem, errInvalidDateRange, errInvalidFilter, errUnknownColumn} {
		if errors.Is(err, target) {
			return app.MsgInvalidDataProvided + ": " + err.Error()
		}
	}
	return service.UserMessage(err)
}
