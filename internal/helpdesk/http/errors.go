package http

import (
	"errors"
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
)

const internalError = "Internal server error"

// statusFor maps a service error to its HTTP status. ok is false for errors
// that are not part of the service's vocabulary.
func statusFor(err error) (code int, ok bool) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, true

	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, true

	case errors.Is(err, service.ErrInvitationNotFound),
		errors.Is(err, service.ErrOrganizationNotFound),
		errors.Is(err, service.ErrTeamNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, true

	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, httpx.ErrBadJSON):
		return http.StatusBadRequest, true

	case errors.Is(err, service.ErrInvitationExpired),
		errors.Is(err, service.ErrInvitationAlreadyUsed),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrLastOwner),
		errors.Is(err, service.ErrDuplicateTeamName),
		errors.Is(err, service.ErrDuplicateSlug),
		errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest, true
	}
	return 0, false
}

// writeServiceError writes err as {"error": ...}. Unknown errors are logged
// and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if code, ok := statusFor(err); ok {
		httpx.WriteError(w, code, err.Error())
		return
	}
	if errors.Is(err, service.ErrCodeExhausted) {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to generate a unique invitation code, please try again")
		return
	}

	slogx.FromContext(r.Context()).Error(op+" failed", slogx.Err(err))
	httpx.WriteError(w, http.StatusInternalServerError, internalError)
}

// requireActor fetches the caller or writes a 401. Routes behind
// SessionMiddleware always have one.
func requireActor(w http.ResponseWriter, r *http.Request) (domain.ActiveContext, bool) {
	a, ok := actorFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return domain.ActiveContext{}, false
	}
	return a, true
}
