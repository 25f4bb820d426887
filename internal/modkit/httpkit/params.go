package httpkit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	perrs "timeclock/internal/platform/errors"
)

// Param returns the named URL path parameter
func Param(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

// MustParam returns the named URL path parameter or an invalid argument error when blank
func MustParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(Param(r, name))
	if v == "" {
		return "", perrs.Validationf("%s is required", name)
	}
	return v, nil
}

// Query returns the named query string value, trimmed
func Query(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// QueryDefault returns the named query string value or def when blank
func QueryDefault(r *http.Request, name, def string) string {
	if v := Query(r, name); v != "" {
		return v
	}
	return def
}
