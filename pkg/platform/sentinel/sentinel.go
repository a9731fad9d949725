package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, providers and publishers
// return these (optionally wrapped) so the HTTP layer can map them without
// knowing the concrete backend:
//   - ErrNotFound: entity does not exist in store
//   - ErrExpired: token or link has expired
//   - ErrInvalidState: entity in wrong state for requested operation
//   - ErrUnavailable: service or resource temporarily unavailable
//
// Validation failures are never sentinels; they are domain.ErrorKind values.
var (
	ErrNotFound     = errors.New("not found")
	ErrExpired      = errors.New("expired")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
