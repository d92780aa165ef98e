package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ceasedesk/console/internal/core/domain"
	"github.com/ceasedesk/console/internal/infrastructure/resilience"
)

// decodeErrorResponse turns a non-2xx response into a structured transport
// error. The backend reports failures as {"detail": "..."}; Detail stays
// empty when the body has some other shape so callers fall back to their
// flow-specific generic message.
func decodeErrorResponse(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	detail := ""
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		detail = strings.TrimSpace(payload.Detail)
	}

	terr := &domain.TransportError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Detail:     detail,
	}
	if detail == "" && len(strings.TrimSpace(string(body))) > 0 {
		terr.Err = fmt.Errorf("%s", strings.TrimSpace(string(body)))
	}
	return terr
}

// classifyBackendError decides whether a failed call counts against the
// circuit breaker. Caller-side rejections (4xx) and cancellations mean the
// backend is healthy and must not trip it.
func classifyBackendError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}

	var terr *domain.TransportError
	if errors.As(err, &terr) {
		if terr.StatusCode >= 400 && terr.StatusCode < 500 {
			return resilience.ErrorClassification{RecordFailure: false}
		}
		return resilience.ErrorClassification{RecordFailure: true}
	}

	return resilience.ErrorClassification{RecordFailure: true}
}
