package admin

import (
	"log/slog"
	"net/http"

	"onboarding/pkg/platform/httputil"
	"onboarding/pkg/platform/secrets"
	"onboarding/pkg/requestcontext"
)

// HeaderToken carries the operator token on admin requests.
const HeaderToken = "X-Admin-Token"

// RequireAdminToken rejects requests whose X-Admin-Token does not match the
// bcrypt hash tokenHash. An empty tokenHash disables the admin surface.
func RequireAdminToken(tokenHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderToken)
			if tokenHash == "" || token == "" || secrets.Verify(token, tokenHash) != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin token mismatch",
					"request_id", requestcontext.RequestID(ctx),
					"client_ip", requestcontext.ClientIP(ctx),
				)
				httputil.WriteError(w, httputil.NewError(http.StatusUnauthorized, "unauthorized", "admin token required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
