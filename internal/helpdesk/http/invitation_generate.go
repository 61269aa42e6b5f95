package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type GenerateCodeHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Generate Invitation Code
//	@Description	Mint a six-digit invitation code for an organization, or one of its teams, valid for 48 hours.
//	@Description	organizationId defaults to the caller's active organization. role defaults to member.
//	@Description	Requires owner or admin in the organization or the team; inviting an owner requires owner.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.GenerateCodeRequest	true	"Invitation"
//	@Success		200		{object}	helpdesksdk.GenerateCodeResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse
//	@Failure		401		{object}	helpdesksdk.ErrorResponse
//	@Failure		403		{object}	helpdesksdk.ErrorResponse
//	@Failure		404		{object}	helpdesksdk.ErrorResponse	"organization or team not found"
//	@Failure		500		{object}	helpdesksdk.ErrorResponse	"includes code space exhaustion"
//	@Security		BearerAuth
//	@Router			/api/organization/generate-code [post].
func (h *GenerateCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req helpdesksdk.GenerateCodeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.OrganizationID == "" {
		req.OrganizationID = actor.ActiveOrganizationID
	}

	inv, err := h.InvitationService.Generate(r.Context(), actor, service.GenerateInvitationInput{
		OrganizationID: req.OrganizationID,
		TeamID:         req.TeamID,
		Role:           domain.Role(req.Role),
		Email:          req.Email,
	})
	if err != nil {
		writeServiceError(w, r, err, "invitation generation")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.GenerateCodeResponse{
		Success:    true,
		Code:       inv.Code,
		Invitation: toInvitation(inv),
	})
}
