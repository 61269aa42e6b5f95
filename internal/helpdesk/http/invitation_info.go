package http

import (
	"net/http"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type InvitationInfoHandler struct {
	InvitationService *service.InvitationService

	// Now defaults to time.Now.
	Now func() time.Time
}

// ServeHTTP godoc
//
//	@Summary		Invitation Info
//	@Description	Look up an invitation code before joining. Public; expired and used codes are rejected.
//	@Tags			Invitations
//	@Produce		json
//	@Param			code	query		string	true	"Six-digit invitation code"
//	@Success		200		{object}	helpdesksdk.InvitationInfoResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse	"malformed, expired or used code"
//	@Failure		404		{object}	helpdesksdk.ErrorResponse
//	@Failure		429		{object}	helpdesksdk.ErrorResponse
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Router			/api/organization/invitation-info [get].
func (h *InvitationInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d, err := h.InvitationService.FindByCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeServiceError(w, r, err, "invitation lookup")
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	switch {
	case d.ExpiredAt(now()):
		writeServiceError(w, r, service.ErrInvitationExpired, "invitation lookup")
		return
	case d.Used():
		writeServiceError(w, r, service.ErrInvitationAlreadyUsed, "invitation lookup")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.InvitationInfoResponse{
		Success:    true,
		Invitation: toInvitationInfo(d),
	})
}
