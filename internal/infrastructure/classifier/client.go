package classifier

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/ceasedesk/console/internal/core/domain"
	"github.com/ceasedesk/console/internal/infrastructure/resilience"
	"github.com/ceasedesk/console/internal/observability/metrics"
)

// Client talks to the document-classification backend over its four-endpoint
// HTTP contract (upload, bulk upload, chat, dashboard metrics). Timeouts
// live here in the transport; callers do not retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	exec       *resilience.Executor
	metrics    *metrics.ClientMetrics
}

type Option func(*Client)

// WithTimeout overrides the per-request transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithExecutor routes every call through a resilience executor.
func WithExecutor(exec *resilience.Executor) Option {
	return func(c *Client) { c.exec = exec }
}

// WithMetrics records request counts and durations per operation.
func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Upload submits one document as multipart field "file".
func (c *Client) Upload(ctx context.Context, file domain.FilePayload) (domain.UploadResponse, error) {
	var out domain.UploadResponse
	err := c.postMultipart(ctx, "/upload/", "upload", "file", []domain.FilePayload{file}, &out)
	return out, err
}

// BulkUpload submits all files in one request as repeated multipart field
// "files". Per-file failures come back inside the result list.
func (c *Client) BulkUpload(ctx context.Context, files []domain.FilePayload) ([]domain.BulkFileResult, error) {
	var out struct {
		Results []domain.BulkFileResult `json:"results"`
	}
	if err := c.postMultipart(ctx, "/bulk_upload/", "bulk_upload", "files", files, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Chat sends the whole transcript plus the detected document language and
// returns the assistant reply.
func (c *Client) Chat(ctx context.Context, messages []domain.ChatMessage, language string) (string, error) {
	payload := map[string]any{
		"messages": messages,
		"language": language,
	}
	var out struct {
		Response string `json:"response"`
	}
	if err := c.postJSON(ctx, "/chat/", "chat", payload, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

// DashboardMetrics fetches the combined metrics + recent-data snapshot that
// feeds the review surface.
func (c *Client) DashboardMetrics(ctx context.Context) (domain.DashboardSnapshot, error) {
	var out domain.DashboardSnapshot
	err := c.getJSON(ctx, "/dashboard/metrics/", "dashboard_metrics", &out)
	return out, err
}
