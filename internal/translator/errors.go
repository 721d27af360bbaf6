package translator

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrResponseTooLarge is returned when a response body exceeds
// maxResponseSize. Nothing is parsed from such a body.
var ErrResponseTooLarge = errors.New("response too large")

// readBody reads at most maxResponseSize bytes of r and fails rather than
// returning a truncated body.
func readBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxResponseSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, maxResponseSize)
	}
	return body, nil
}

// ErrorMessageFields lists the response body fields consulted, in order, for
// a human-readable error message.
var ErrorMessageFields = []string{"message", "error"}

// APIError is a failure reported by the translation API: either a non-2xx
// HTTP status or a body whose status discriminant is not "success".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// FirstPresent returns the value of the first field in fields that is present
// in the JSON body and carries a non-empty, non-null, non-false value.
// Objects and arrays are returned as raw JSON.
func FirstPresent(body []byte, fields ...string) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	for _, f := range fields {
		r := gjson.GetBytes(body, f)
		if !r.Exists() || r.Type == gjson.Null || r.Type == gjson.False {
			continue
		}
		if s := r.String(); s != "" {
			return s, true
		}
	}
	return "", false
}

// MessageFromBody derives an error message from a response body: the first
// of ErrorMessageFields that is present, else the compact JSON body, else the
// raw body text.
func MessageFromBody(body []byte) string {
	if msg, ok := FirstPresent(body, ErrorMessageFields...); ok {
		return msg
	}
	if gjson.ValidBytes(body) {
		return strings.TrimSpace(string(pretty.Ugly(body)))
	}
	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}
	return "empty response body"
}
