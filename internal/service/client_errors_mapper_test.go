package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pos-client/internal/adapter"
	"github.com/MKhiriev/go-pos-client/internal/app"
	"github.com/MKhiriev/go-pos-client/internal/validators"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "unavailable", in: adapter.ErrUnavailable, want: ErrOffline},
		{name: "unauthorized", in: adapter.ErrUnauthorized, want: ErrSessionExpired},
		{name: "forbidden", in: adapter.ErrForbidden, want: ErrAccessDenied},
		{name: "not found", in: adapter.ErrNotFound, want: ErrRecordNotFound},
		{name: "bad request", in: adapter.ErrBadRequest, want: ErrRejected},
		{name: "conflict", in: adapter.ErrConflict, want: ErrRejected},
		{name: "graphql", in: fmt.Errorf("%w: name is taken", adapter.ErrGraphQL), want: ErrRejected},
		{name: "delete rejected", in: adapter.ErrDeleteRejected, want: ErrRejected},
		{name: "internal", in: adapter.ErrInternalServerError, want: ErrServerFailure},
		{name: "bad gateway", in: adapter.ErrBadGateway, want: ErrServerFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(fmt.Errorf("create customer: %w", tt.in))

			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in, "the adapter error stays in the chain")
		})
	}
}

func TestMapAdapterError_PassThrough(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	other := errors.New("boom")
	assert.Same(t, other, mapAdapterError(other))

	cancelled := fmt.Errorf("fetch: %w", context.Canceled)
	assert.ErrorIs(t, mapAdapterError(cancelled), context.Canceled)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantPrefix string
	}{
		{name: "nil", err: nil, wantPrefix: ""},
		{name: "validation", err: fmt.Errorf("%w: -1", validators.ErrInvalidPage), wantPrefix: app.MsgInvalidDataProvided},
		{name: "offline", err: mapAdapterError(adapter.ErrUnavailable), wantPrefix: app.MsgOffline},
		{name: "session", err: mapAdapterError(adapter.ErrUnauthorized), wantPrefix: app.MsgTokenIsExpiredOrInvalid},
		{name: "forbidden", err: mapAdapterError(adapter.ErrForbidden), wantPrefix: app.MsgAccessDenied},
		{name: "not found", err: mapAdapterError(adapter.ErrNotFound), wantPrefix: app.MsgDataNotFound},
		{name: "rejected", err: mapAdapterError(adapter.ErrConflict), wantPrefix: app.MsgRejectedByServer},
		{name: "server", err: mapAdapterError(adapter.ErrInternalServerError), wantPrefix: app.MsgInternalServerError},
		{name: "other", err: errors.New("boom"), wantPrefix: app.MsgUnexpectedError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserMessage(tt.err)

			assert.True(t, strings.HasPrefix(got, tt.wantPrefix), "got %q", got)
			if tt.err == nil {
				assert.Empty(t, got)
			}
		})
	}
}

func TestUserMessage_ValidationKeepsDetail(t *testing.T) {
	got := UserMessage(validators.ErrEmptyName)

	assert.Contains(t, got, validators.ErrEmptyName.Error())
}
