package jsonapi_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Pavesi99/EndpointTracker/pkg/jsonapi"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	jsonapi.WriteError(w, jsonapi.ErrNotFound("no such endpoint"))

	if w.Code != 404 {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != jsonapi.ContentType {
		t.Errorf("content type = %q, want %q", ct, jsonapi.ContentType)
	}

	var doc jsonapi.ErrorDocument
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(doc.Errors) != 1 {
		t.Fatalf("errors = %d, want 1", len(doc.Errors))
	}
	if doc.Errors[0].Code != "not_found" || doc.Errors[0].Detail != "no such endpoint" {
		t.Errorf("error = %+v", doc.Errors[0])
	}
}

func TestWriteError_NoErrorsDefaultsToInternal(t *testing.T) {
	w := httptest.NewRecorder()

	jsonapi.WriteError(w)

	if w.Code != 500 {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestErrorStatusCode(t *testing.T) {
	if got := jsonapi.ErrBadRequest("x").StatusCode(); got != 400 {
		t.Errorf("StatusCode = %d, want 400", got)
	}
	if got := (jsonapi.Error{Status: "nope"}).StatusCode(); got != 0 {
		t.Errorf("StatusCode for junk = %d, want 0", got)
	}
}
