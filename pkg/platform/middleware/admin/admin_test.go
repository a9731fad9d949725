package admin

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"onboarding/pkg/platform/secrets"
)

func TestRequireAdminToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	hash, err := secrets.HashWithCost("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name   string
		hash   string
		sent   string
		status int
	}{
		{"matching token", hash, "s3cret", http.StatusNoContent},
		{"wrong token", hash, "guess", http.StatusUnauthorized},
		{"missing token", hash, "", http.StatusUnauthorized},
		{"admin disabled", "", "s3cret", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/admin/risk-model", nil)
			if tt.sent != "" {
				req.Header.Set(HeaderToken, tt.sent)
			}
			rr := httptest.NewRecorder()
			RequireAdminToken(tt.hash, logger)(ok).ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}
