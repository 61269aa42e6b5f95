package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type JoinWithCodeHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Join With Code
//	@Description	Redeem an invitation code. The caller becomes a member with the invitation's role and team.
//	@Description	When the caller's latest session has no active organization, the joined one becomes active.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.JoinWithCodeRequest	true	"Code"
//	@Success		200		{object}	helpdesksdk.JoinWithCodeResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse	"malformed, expired or used code, or already a member"
//	@Failure		401		{object}	helpdesksdk.ErrorResponse
//	@Failure		404		{object}	helpdesksdk.ErrorResponse
//	@Failure		429		{object}	helpdesksdk.ErrorResponse
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/organization/join-with-code [post].
func (h *JoinWithCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req helpdesksdk.JoinWithCodeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	res, err := h.InvitationService.Redeem(r.Context(), actor, req.Code)
	if err != nil {
		writeServiceError(w, r, err, "invitation redemption")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.JoinWithCodeResponse{
		Success:               true,
		Member:                toMember(res.Member),
		ActiveOrganizationSet: res.ActiveOrganizationSet,
	})
}
