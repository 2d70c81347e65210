package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error has no cause", func(t *testing.T) {
		e := NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
		if e.Error() != "QUOTATION_NOT_FOUND: Quotation not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected nil cause")
		}
	})

	t.Run("domain error unwraps its cause", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
	})

	t.Run("details are copied", func(t *testing.T) {
		base := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		withID := base.WithDetail("quotationId", int64(7))
		if base.Details != nil {
			t.Fatalf("base error must not be mutated: %+v", base.Details)
		}
		body := withID.ToHTTPError()
		if body.Error != "INVALID_REQUEST" || body.Details["quotationId"] != int64(7) {
			t.Fatalf("unexpected http error: %+v", body)
		}
	})
}
