// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the remote API or
// a local cache.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - EntityValidator: mutation inputs of every entity (CustomerInput, …,
//     SaleInput) and record identifiers.
//   - QueryValidator: the list configuration of one entity screen.
//
// A value that fails validation must not be sent anywhere; callers return
// the error unchanged so it can be matched with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
