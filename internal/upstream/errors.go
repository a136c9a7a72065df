package upstream

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// DefaultErrorMessage is used when a failed response carries no usable message.
const DefaultErrorMessage = "request failed"

// RequestError is returned when a call to the movie API does not succeed,
// either because it never got a response or because the status was not 2xx.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusCode returns the upstream HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// IsNotFound reports whether the upstream answered 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// errorMessage extracts the "message" field of a JSON error body.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return DefaultErrorMessage
	}
	m := gjson.GetBytes(body, "message")
	if m.Type != gjson.String || m.String() == "" {
		return DefaultErrorMessage
	}
	return m.String()
}
