package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "task-capture/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "taken"))

	if got := pkgErrors.StatusCode(wrapped); got != http.StatusConflict {
		t.Errorf("StatusCode() = %d, want %d", got, http.StatusConflict)
	}
	if got := pkgErrors.StatusCode(fmt.Errorf("plain")); got != 0 {
		t.Errorf("StatusCode(plain) = %d, want 0", got)
	}
	if msg := pkgErrors.BadRequestf("bad %s", "date").Error(); msg != "bad date" {
		t.Errorf("BadRequestf() = %q", msg)
	}
}
