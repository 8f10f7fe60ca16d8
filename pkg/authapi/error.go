package authapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// GenericRegistrationMessage is the fallback shown when the error response
// carries nothing usable.
const GenericRegistrationMessage = "Registration failed. Please try again."

// APIError is a non-2xx response from the auth service. Detail holds the
// decoded "detail" field when the body was a JSON object; RawBody keeps the
// original bytes for the audit trail.
type APIError struct {
	StatusCode int
	Detail     any
	RawBody    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth api: status %d: %s", e.StatusCode, e.Message())
}

// Message derives a human-readable string from the error response. The
// precedence matches what the auth service actually emits:
//  1. detail is a list of field errors: "loc → parts: msg", comma-joined
//  2. detail is a plain string
//  3. detail is an object: serialized
//  4. the body itself is a string
//  5. generic fallback
func (e *APIError) Message() string {
	switch detail := e.Detail.(type) {
	case []any:
		if msg := formatFieldErrors(detail); msg != "" {
			return msg
		}
	case string:
		if detail != "" {
			return detail
		}
	case map[string]any:
		if b, err := json.Marshal(detail); err == nil {
			return string(b)
		}
	}
	if s := bodyAsString(e.RawBody); s != "" {
		return s
	}
	return GenericRegistrationMessage
}

// formatFieldErrors renders FastAPI-style validation errors
// ([{loc: ["body","email"], msg: "invalid format"}]) as
// "body → email: invalid format".
func formatFieldErrors(items []any) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			parts = append(parts, fmt.Sprintf("%v", item))
			continue
		}
		msg, _ := entry["msg"].(string)
		locs, _ := entry["loc"].([]any)
		locParts := make([]string, 0, len(locs))
		for _, loc := range locs {
			locParts = append(locParts, locString(loc))
		}
		if len(locParts) == 0 {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, strings.Join(locParts, " → ")+": "+msg)
	}
	return strings.Join(parts, ", ")
}

// locString renders one location segment. JSON numbers decode as float64;
// array indices must not print as "0.000000".
func locString(loc any) string {
	switch v := loc.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// bodyAsString handles the case where the whole error body is a string:
// either a JSON-encoded string or plain text that never was JSON.
func bodyAsString(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		return s
	}
	if json.Valid([]byte(raw)) {
		// Valid JSON that is not a string and carried no usable detail.
		return ""
	}
	return raw
}

// ErrorMessage converts any error from the client into a display string.
// Transport failures without a response body fall through to the generic
// message; nothing propagates further.
func ErrorMessage(err error) string {
	return ErrorMessageOr(err, GenericRegistrationMessage)
}

// ErrorMessageOr is ErrorMessage with a caller-supplied fallback, for flows
// other than registration.
func ErrorMessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.Message(); msg != GenericRegistrationMessage {
			return msg
		}
	}
	return fallback
}
