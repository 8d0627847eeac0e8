package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
	if e.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", e.HTTPStatus)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}

	body := e.ToHTTPError()
	if body.Error.Code != "INTERNAL_ERROR" || body.Error.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Err != nil || simple.Error() != "NOT_FOUND: Not found" {
		t.Fatalf("unexpected simple error: %v", simple)
	}

	withDetails := simple.ToHTTPErrorWithDetails(map[string]string{"field": "x"})
	if withDetails.Error.Details == nil {
		t.Fatalf("expected details")
	}
}
