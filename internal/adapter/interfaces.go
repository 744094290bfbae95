// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the POS client and
// the remote GraphQL API.
//
// [GraphQLClient] posts one operation and decodes its data; it knows nothing
// about entities. [EntityAdapter] turns the paginated list, create, update
// and delete operations of one entity into typed calls, building the
// documents from a [models.EntitySchema].
//
// HTTP status codes are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401). A request
// that never got a response wraps [ErrUnavailable]; a response carrying a
// GraphQL errors array wraps [ErrGraphQL].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pos-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// GraphQLClient executes GraphQL operations against the remote API.
type GraphQLClient interface {
	// Do sends op and decodes the data object of the response into out.
	// out may be nil when the caller only cares about success.
	Do(ctx context.Context, op Operation, out any) error
}

// EntityAdapter is the remote API of one entity type. T is the record type
// and I the mutation input type.
type EntityAdapter[T models.Entity, I any] interface {
	// FetchPage returns one page of records matching req. req.Page is
	// one-based.
	FetchPage(ctx context.Context, req models.PageRequest) (models.Page[T], error)

	// Create sends input and returns the record as stored by the server,
	// including its identifier and creation timestamp.
	Create(ctx context.Context, input I) (T, error)

	// Update replaces the attributes of record id with input and returns
	// the stored record.
	Update(ctx context.Context, id int64, input I) (T, error)

	Delete(ctx context.Context, id int64) error
}
