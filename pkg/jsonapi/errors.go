// Package jsonapi provides JSON:API style error envelopes for HTTP handlers.
package jsonapi

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ContentType is the media type for JSON:API documents.
const ContentType = "application/vnd.api+json"

// Error represents a single JSON:API error object.
type Error struct {
	Status string `json:"status,omitempty"`
	Code   string `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// StatusCode returns the numeric HTTP status of the error.
func (e Error) StatusCode() int {
	n, err := strconv.Atoi(e.Status)
	if err != nil {
		return 0
	}
	return n
}

// ErrorDocument is the top-level envelope for error responses.
type ErrorDocument struct {
	Errors []Error `json:"errors"`
}

// ErrBadRequest builds a 400 error.
func ErrBadRequest(detail string) Error {
	return Error{
		Status: strconv.Itoa(http.StatusBadRequest),
		Code:   "bad_request",
		Title:  "Bad Request",
		Detail: detail,
	}
}

// ErrNotFound builds a 404 error.
func ErrNotFound(detail string) Error {
	return Error{
		Status: strconv.Itoa(http.StatusNotFound),
		Code:   "not_found",
		Title:  "Not Found",
		Detail: detail,
	}
}

// ErrMethodNotAllowed builds a 405 error.
func ErrMethodNotAllowed(detail string) Error {
	return Error{
		Status: strconv.Itoa(http.StatusMethodNotAllowed),
		Code:   "method_not_allowed",
		Title:  "Method Not Allowed",
		Detail: detail,
	}
}

// ErrInternal builds a 500 error.
func ErrInternal(detail string) Error {
	return Error{
		Status: strconv.Itoa(http.StatusInternalServerError),
		Code:   "internal_error",
		Title:  "Internal Server Error",
		Detail: detail,
	}
}

// WriteError writes an error response with one or more errors.
// The HTTP status is derived from the first error's status field.
func WriteError(w http.ResponseWriter, errs ...Error) {
	if len(errs) == 0 {
		errs = []Error{ErrInternal("")}
	}

	status := errs[0].StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorDocument{Errors: errs})
}

// WriteBadRequest is a convenience for 400 errors.
func WriteBadRequest(w http.ResponseWriter, detail string) {
	WriteError(w, ErrBadRequest(detail))
}

// WriteNotFound is a convenience for 404 errors.
func WriteNotFound(w http.ResponseWriter, detail string) {
	WriteError(w, ErrNotFound(detail))
}
