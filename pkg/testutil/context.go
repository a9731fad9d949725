package testutil

import (
	"net/http"
	"time"

	"onboarding/pkg/requestcontext"
)

// WithRequestTime pins the request clock, as the RequestTime middleware would.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}

// WithRequestID sets the request id, as the RequestID middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
