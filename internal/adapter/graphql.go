package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-pos-client/internal/config"
	"github.com/MKhiriev/go-pos-client/internal/logger"
	"github.com/MKhiriev/go-pos-client/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// Operation is one GraphQL request body.
type Operation struct {
	Name      string         `json:"operationName,omitempty"`
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

type graphQLClient struct {
	client *utils.HTTPClient
	path   string
	token  string

	requestIDs *utils.UUIDGenerator
	logger     *logger.Logger
}

// NewGraphQLClient constructs a [GraphQLClient] posting to
// adapterCfg.HTTPAddress + adapterCfg.GraphQLPath. A bare host:port address
// is treated as http. When appCfg.APIToken is set it is sent as a bearer
// token; an already expired token is logged but still used, since the
// server has the final word.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewGraphQLClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (GraphQLClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	path := adapterCfg.GraphQLPath
	if path == "" {
		path = config.DefaultGraphQLPath
	}

	token := strings.TrimSpace(appCfg.APIToken)
	if token != "" {
		expired, err := utils.TokenExpired(token, time.Now())
		switch {
		case err != nil:
			log.Warn().Err(err).Str("func", "NewGraphQLClient").Msg("API token is not a JWT, sending it as is")
		case expired:
			log.Warn().Str("func", "NewGraphQLClient").Msg("API token has expired, requests will likely be rejected")
		}
	}

	return &graphQLClient{
		client:     utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		path:       path,
		token:      token,
		requestIDs: utils.NewUUIDGenerator(),
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [GraphQLClient].
func (c *graphQLClient) Do(ctx context.Context, op Operation, out any) error {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = c.requestIDs.Generate()
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		SetBody(op)
	if c.token != "" {
		req.SetAuthToken(c.token)
	}

	resp, err := req.Post(c.path)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("func", "graphQLClient.Do").
			Str("operation", op.Name).
			Str("request_id", requestID).
			Msg("request failed")
		return fmt.Errorf("%w: %s request: %w", ErrUnavailable, op.Name, err)
	}

	c.logger.Debug().
		Str("func", "graphQLClient.Do").
		Str("operation", op.Name).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("request done")

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}

	var envelope graphQLResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodingData, op.Name, err)
	}
	if err = mapGraphQLErrors(envelope.Errors); err != nil {
		return fmt.Errorf("%s: %w", op.Name, err)
	}

	if out == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err = json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecodingData, op.Name, err)
	}
	return nil
}
