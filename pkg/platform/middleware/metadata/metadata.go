package metadata

import (
	"context"
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"onboarding/pkg/requestcontext"
)

type contextKeyAgent struct{}

// Agent is the parsed User-Agent of the caller.
type Agent struct {
	Browser string
	OS      string
	Mobile  bool
	Bot     bool
}

// ClientMetadata records the client IP and parsed User-Agent in the context.
// Apply it early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientIP(r.Context(), ClientIPFromRequest(r))
		ctx = WithAgent(ctx, ParseAgent(r.Header.Get("User-Agent")))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ParseAgent parses a User-Agent header. An empty header yields a zero Agent.
func ParseAgent(header string) Agent {
	if header == "" {
		return Agent{}
	}
	ua := useragent.New(header)
	browser, _ := ua.Browser()
	return Agent{
		Browser: browser,
		OS:      ua.OS(),
		Mobile:  ua.Mobile(),
		Bot:     ua.Bot(),
	}
}

// GetAgent retrieves the parsed User-Agent from the context.
func GetAgent(ctx context.Context) Agent {
	if agent, ok := ctx.Value(contextKeyAgent{}).(Agent); ok {
		return agent
	}
	return Agent{}
}

// WithAgent injects a parsed User-Agent into a context.
func WithAgent(ctx context.Context, agent Agent) context.Context {
	return context.WithValue(ctx, contextKeyAgent{}, agent)
}

// ClientIPFromRequest extracts the client IP, honouring proxy headers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For: client, proxy1, proxy2
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}
	return "unknown"
}
