package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrTransport  = errors.New("transport failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// TransportError is the structured outcome of one failed backend call.
// Detail carries the backend's {detail} message when the response had one;
// StatusCode is zero when the request never produced a response.
type TransportError struct {
	Operation  string
	StatusCode int
	Detail     string
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString("backend ")
	if e.Operation != "" {
		b.WriteString(e.Operation)
	} else {
		b.WriteString("request")
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " status %d", e.StatusCode)
	}
	switch {
	case strings.TrimSpace(e.Detail) != "":
		b.WriteString(": ")
		b.WriteString(e.Detail)
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *TransportError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrTransport, e.Err}
	}
	return []error{ErrTransport}
}

// ErrorDetail returns the backend-supplied detail message when the error
// carries one, otherwise the given flow-specific fallback.
func ErrorDetail(err error, fallback string) string {
	var terr *TransportError
	if errors.As(err, &terr) && strings.TrimSpace(terr.Detail) != "" {
		return terr.Detail
	}
	return fallback
}
