package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ceasedesk/console/internal/core/domain"
)

func (c *Client) postJSON(ctx context.Context, path, operation string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}
	return c.do(ctx, http.MethodPost, path, operation, "application/json", bytes.NewReader(body), out)
}

func (c *Client) postMultipart(ctx context.Context, path, operation, field string, files []domain.FilePayload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		part, err := writer.CreateFormFile(field, file.Name)
		if err != nil {
			return fmt.Errorf("build %s form: %w", operation, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("write %s form: %w", operation, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize %s form: %w", operation, err)
	}
	return c.do(ctx, http.MethodPost, path, operation, writer.FormDataContentType(), &buf, out)
}

func (c *Client) getJSON(ctx context.Context, path, operation string, out any) error {
	return c.do(ctx, http.MethodGet, path, operation, "", nil, out)
}

func (c *Client) do(ctx context.Context, method, path, operation, contentType string, body io.Reader, out any) error {
	started := time.Now()
	if c.metrics != nil {
		c.metrics.StartRequest()
	}

	run := func(ctx context.Context) error {
		return c.roundTrip(ctx, method, path, operation, contentType, body, out)
	}

	var err error
	if c.exec != nil {
		err = c.exec.Execute(ctx, operation, run, classifyBackendError)
	} else {
		err = run(ctx)
	}

	if c.metrics != nil {
		c.metrics.FinishRequest(operation, time.Since(started), err)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path, operation, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeErrorResponse(operation, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}
