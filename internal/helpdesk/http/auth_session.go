package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type SessionHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Current Session
//	@Description	Return the caller's session, including the active organization, and user profile.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	helpdesksdk.SessionResponse
//	@Failure		401	{object}	helpdesksdk.ErrorResponse
//	@Failure		500	{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/auth/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	sess, u, err := h.AccountService.Session(r.Context(), actor)
	if err != nil {
		writeServiceError(w, r, err, "session lookup")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.SessionResponse{
		Success: true,
		Session: toSession(sess),
		User:    toUser(u),
	})
}
