// Package client is a Go client for the wellbore HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
)

// DefaultBasePath is the API prefix the server mounts its routes on.
const DefaultBasePath = "/WellBore/api"

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("wellbore api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("wellbore api: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type errorBody struct {
	Error *struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

// Client talks to one wellbore service.
type Client struct {
	http *resty.Client
}

// Option configures a Client.
type Option func(*resty.Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(timeout) }
}

// WithRetries retries failed requests up to count times.
func WithRetries(count int) Option {
	return func(c *resty.Client) {
		c.SetRetryCount(count).SetRetryWaitTime(200 * time.Millisecond)
	}
}

// New returns a client for the service at baseURL, which must include the
// API base path (for example http://localhost:8080/WellBore/api).
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", "wellbore-api-client/1.0").
		SetHeader("Accept", "application/json").
		SetTimeout(20 * time.Second)
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

// ListIDs returns the ids of every stored wellbore.
func (c *Client) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	return ids, c.get(ctx, "/WellBore", &ids)
}

// ListMetaInfo returns the MetaInfo of every stored wellbore.
func (c *Client) ListMetaInfo(ctx context.Context) ([]wellbore.MetaInfo, error) {
	var infos []wellbore.MetaInfo
	return infos, c.get(ctx, "/WellBore/MetaInfo", &infos)
}

// List returns every stored wellbore with all its data.
func (c *Client) List(ctx context.Context) ([]wellbore.WellBore, error) {
	var wellBores []wellbore.WellBore
	return wellBores, c.get(ctx, "/WellBore/HeavyData", &wellBores)
}

// Get returns one wellbore.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (wellbore.WellBore, error) {
	var wb wellbore.WellBore
	return wb, c.get(ctx, "/WellBore/"+id.String(), &wb)
}

// Create stores a new wellbore.
func (c *Client) Create(ctx context.Context, wb wellbore.WellBore) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(wb).
		Post("/WellBore")
	return check(resp, err)
}

// Update replaces the stored wellbore with the same id.
func (c *Client) Update(ctx context.Context, wb wellbore.WellBore) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(wb).
		Put("/WellBore/" + wb.ID().String())
	return check(resp, err)
}

// Delete removes a wellbore.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/WellBore/" + id.String())
	return check(resp, err)
}

// UsageStatistics returns the server's per-day call counts.
func (c *Client) UsageStatistics(ctx context.Context) (usage.Snapshot, error) {
	var snap usage.Snapshot
	return snap, c.get(ctx, "/WellBoreUsageStatistics", &snap)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err := check(resp, err); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("wellbore api request: %w", err)
	}
	if !resp.IsError() {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	var body errorBody
	if json.Unmarshal(resp.Body(), &body) == nil && body.Error != nil {
		apiErr.Type = body.Error.Type
		apiErr.Message = body.Error.Message
		apiErr.RequestID = body.Error.RequestID
	}
	return apiErr
}
