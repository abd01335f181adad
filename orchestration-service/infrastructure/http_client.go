package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/ticketera/ticket-platform/orchestration-service/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	maxErrorBodySize     = 4 << 10
)

// StatusError is returned when a service answers with an unexpected status
type StatusError struct {
	Service    string
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s %s returned %d: %s", e.Service, e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s %s returned %d", e.Service, e.Method, e.Path, e.StatusCode)
}

// Unwrap maps the client error statuses onto domain sentinels
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidRequest
	}
	return nil
}

// jsonClient talks JSON to one collaborating service. Outbound requests
// carry the trace context through otelhttp.
type jsonClient struct {
	service string
	baseURL string
	client  *http.Client
}

func newJSONClient(service, baseURL string, timeout time.Duration) *jsonClient {
	return &jsonClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
					return service + " " + r.Method + " " + r.URL.Path
				}),
			),
		},
	}
}

type request struct {
	method         string
	path           string
	body           interface{}
	idempotencyKey string
}

type response struct {
	statusCode int
	body       []byte
}

func (r *response) ok() bool {
	return r.statusCode >= 200 && r.statusCode < 300
}

func (r *response) decode(out interface{}) error {
	if out == nil || len(bytes.TrimSpace(r.body)) == 0 {
		return nil
	}
	return json.Unmarshal(r.body, out)
}

// do sends req and returns the raw response, whatever its status
func (c *jsonClient) do(ctx context.Context, req request) (*response, error) {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal request body")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.idempotencyKey != "" {
		httpReq.Header.Set(idempotencyKeyHeader, req.idempotencyKey)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s %s failed", c.service, req.method, req.path)
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return &response{statusCode: httpResp.StatusCode, body: payload}, nil
}

// call sends req and decodes a 2xx body into out. Other statuses become a
// *StatusError.
func (c *jsonClient) call(ctx context.Context, req request, out interface{}) error {
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return c.statusError(req, resp)
	}
	if err := resp.decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", c.service)
	}
	return nil
}

func (c *jsonClient) statusError(req request, resp *response) *StatusError {
	return &StatusError{
		Service:    c.service,
		Method:     req.method,
		Path:       req.path,
		StatusCode: resp.statusCode,
		Message:    errorMessage(resp.body),
	}
}

// errorMessage extracts the message the services put in error bodies
func errorMessage(body []byte) string {
	var payload struct {
		Mensaje string `json:"mensaje"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Mensaje != "":
			return payload.Mensaje
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		}
	}

	if len(body) > maxErrorBodySize {
		body = body[:maxErrorBodySize]
	}
	return strings.TrimSpace(string(body))
}

// parseServiceTime accepts the timestamp layouts the services emit
func parseServiceTime(value string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Errorf("unsupported time format %q", value)
}
