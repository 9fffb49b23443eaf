package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrBadRequest matches 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized matches 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden matches 403 responses.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrConflict matches 409 responses.
	ErrConflict = errors.New("conflict")
	// ErrServer matches any 5xx response.
	ErrServer = errors.New("server error")
	// ErrTransport wraps failures where no response was received.
	ErrTransport = errors.New("api transport failure")
	// ErrDecode is returned when a 2xx body cannot be decoded.
	ErrDecode = errors.New("api response decode failure")
	// ErrUnknownPlatform is returned by ParsePlatform.
	ErrUnknownPlatform = errors.New("unknown game platform")
)

// Error is a non-2xx response. Body holds the raw response body.
type Error struct {
	Method    string
	Path      string
	Status    int
	Body      []byte
	RequestID string
}

func (e *Error) Error() string {
	text := e.Text()
	if text == "" {
		return fmt.Sprintf("api: %s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %s %s: %d %s: %s", e.Method, e.Path, e.Status, http.StatusText(e.Status), text)
}

// Is maps the status code onto the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.Status == http.StatusBadRequest
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrConflict:
		return e.Status == http.StatusConflict
	case ErrServer:
		return e.Status >= 500
	}
	return false
}

// Text returns the body as a plain message.
func (e *Error) Text() string {
	return bodyText(e.Body)
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// BodyEquals reports whether err is an *Error whose body is exactly text.
func BodyEquals(err error, text string) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Text() == text
}

// bodyText trims the body and unquotes it when the server sent a JSON string literal.
func bodyText(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) >= 2 && text[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(text), &s); err == nil {
			return s
		}
	}
	return text
}
