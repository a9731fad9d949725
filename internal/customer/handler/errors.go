package handler

import (
	"errors"
	"net/http"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/link"
	"onboarding/pkg/platform/httputil"
	"onboarding/pkg/platform/sentinel"
)

// toHTTPError maps service errors onto the response contract. Validation
// failures carry their error kind as the code.
func toHTTPError(err error) *httputil.Error {
	if kind, ok := domain.KindOf(err); ok {
		return httputil.NewError(http.StatusUnprocessableEntity, string(kind), err.Error())
	}
	switch {
	case errors.Is(err, link.ErrLinkExpired):
		return httputil.NewError(http.StatusBadRequest, "link_expired", "verification link has expired")
	case errors.Is(err, link.ErrInvalidLink):
		return httputil.NewError(http.StatusBadRequest, "invalid_link", "verification link is not valid")
	case errors.Is(err, sentinel.ErrUnavailable):
		return httputil.NewError(http.StatusServiceUnavailable, "service_unavailable", "")
	default:
		return httputil.Internal()
	}
}

func badRequest(description string) *httputil.Error {
	return httputil.NewError(http.StatusBadRequest, "invalid_request", description)
}
