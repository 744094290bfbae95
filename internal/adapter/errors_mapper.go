package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d", ErrUnavailable, resp.StatusCode())
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// GraphQLError is one entry of the errors array of a GraphQL response.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// mapGraphQLErrors folds the errors array into one error wrapping
// ErrGraphQL. An UNAUTHENTICATED or FORBIDDEN code additionally wraps the
// matching HTTP sentinel, since GraphQL servers answer those with 200.
func mapGraphQLErrors(errs []GraphQLError) error {
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	var kind error
	for _, e := range errs {
		messages = append(messages, e.Message)
		if kind != nil {
			continue
		}
		switch code, _ := e.Extensions["code"].(string); code {
		case "UNAUTHENTICATED":
			kind = ErrUnauthorized
		case "FORBIDDEN":
			kind = ErrForbidden
		case "BAD_USER_INPUT", "GRAPHQL_VALIDATION_FAILED":
			kind = ErrBadRequest
		}
	}

	msg := strings.Join(messages, "; ")
	if kind != nil {
		return fmt.Errorf("%w: %w: %s", ErrGraphQL, kind, msg)
	}
	return fmt.Errorf("%w: %s", ErrGraphQL, msg)
}
