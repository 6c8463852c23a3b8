package usecase

import (
	"errors"

	"github.com/power-mac-book/travelkit-web/internal/infra/integration/travelapi"
)

var (
	// ErrUnauthenticated means the session token is missing, expired or
	// rejected by the backend. The caller must clear the persisted token.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrConfirmationRequired guards destructive actions: deletes are
	// never executed without an explicit confirmation from the caller.
	ErrConfirmationRequired = errors.New("confirmation required")

	ErrNotFound = errors.New("not found")
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// mapGatewayErr reduces backend client errors to the usecase taxonomy:
// auth failures, not-found, backend rejections (domain) and transport
// failures (technical).
func mapGatewayErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, travelapi.ErrUnauthorized) {
		return ErrUnauthenticated
	}
	if errors.Is(err, travelapi.ErrNotFound) {
		return ErrNotFound
	}
	var apiErr *travelapi.APIError
	if errors.As(err, &apiErr) {
		return &DomainError{Code: "BACKEND_REJECTED", Message: apiErr.Error()}
	}
	return &TechnicalError{Code: "BACKEND_UNREACHABLE", Message: err.Error()}
}

// isTransient reports whether a fetch failure is worth a second attempt.
// Only transport failures qualify; rejections and auth failures are final.
func isTransient(err error) bool {
	return IsTechnicalError(err)
}
