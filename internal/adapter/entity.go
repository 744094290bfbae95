package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/models"
)

type entityAdapter[T models.Entity, I any] struct {
	client GraphQLClient
	schema models.EntitySchema
	logger *logger.Logger
}

// NewEntityAdapter returns the [EntityAdapter] of the entity described by
// schema.
func NewEntityAdapter[T models.Entity, I any](client GraphQLClient, schema models.EntitySchema, log *logger.Logger) EntityAdapter[T, I] {
	return &entityAdapter[T, I]{client: client, schema: schema, logger: log}
}

func (a *entityAdapter[T, I]) FetchPage(ctx context.Context, req models.PageRequest) (models.Page[T], error) {
	op, err := listOperation(a.schema, req)
	if err != nil {
		return models.Page[T]{}, err
	}

	var out map[string]*models.Page[T]
	if err = a.client.Do(ctx, op, &out); err != nil {
		return models.Page[T]{}, fmt.Errorf("fetch %s page %d: %w", a.schema.Name, req.Page, err)
	}

	page, ok := out[a.schema.ListField]
	if !ok || page == nil {
		return models.Page[T]{}, fmt.Errorf("%w: %s", ErrMissingField, a.schema.ListField)
	}
	if page.Data == nil {
		page.Data = []T{}
	}
	return *page, nil
}

func (a *entityAdapter[T, I]) Create(ctx context.Context, input I) (T, error) {
	var zero T

	var out map[string]*T
	if err := a.client.Do(ctx, createOperation(a.schema, input), &out); err != nil {
		return zero, fmt.Errorf("create %s: %w", a.schema.Entity, err)
	}

	created, ok := out[a.schema.CreateField()]
	if !ok || created == nil {
		return zero, fmt.Errorf("%w: %s", ErrMissingField, a.schema.CreateField())
	}
	return *created, nil
}

func (a *entityAdapter[T, I]) Update(ctx context.Context, id int64, input I) (T, error) {
	var zero T

	var out map[string]*T
	if err := a.client.Do(ctx, updateOperation(a.schema, id, input), &out); err != nil {
		return zero, fmt.Errorf("update %s %d: %w", a.schema.Entity, id, err)
	}

	updated, ok := out[a.schema.UpdateField()]
	if !ok || updated == nil {
		return zero, fmt.Errorf("%w: %s", ErrMissingField, a.schema.UpdateField())
	}
	return *updated, nil
}

// deleteAck covers both delete shapes: the removed record's id, or a
// success flag with a message.
type deleteAck struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (a *entityAdapter[T, I]) Delete(ctx context.Context, id int64) error {
	var out map[string]json.RawMessage
	if err := a.client.Do(ctx, deleteOperation(a.schema, id), &out); err != nil {
		return fmt.Errorf("delete %s %d: %w", a.schema.Entity, id, err)
	}

	raw, ok := out[a.schema.DeleteField]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return fmt.Errorf("%w: %s", ErrMissingField, a.schema.DeleteField)
	}

	var ack deleteAck
	if err := json.Unmarshal(raw, &ack); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodingData, a.schema.DeleteField, err)
	}
	if ack.Success != nil && !*ack.Success {
		a.logger.Warn().
			Str("func", "entityAdapter.Delete").
			Str("entity", a.schema.Entity).
			Int64("id", id).
			Str("message", ack.Message).
			Msg("server refused delete")
		return fmt.Errorf("%w: %s %d: %s", ErrDeleteRejected, a.schema.Entity, id, ack.Message)
	}
	return nil
}
