package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a failed response ends up in an error.
const maxErrorBody = 512

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// StatusError is a non-2xx answer of the record store. It unwraps to one of
// the package sentinels when the status has one.
type StatusError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *StatusError) Error() string {
	if e.kind != nil {
		return fmt.Sprintf("%s: %s", e.kind, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	if len(message) > maxErrorBody {
		message = message[:maxErrorBody] + "..."
	}
	if message == "" {
		message = http.StatusText(code)
	}

	return &StatusError{StatusCode: code, Message: message, kind: statusErrors[code]}
}
