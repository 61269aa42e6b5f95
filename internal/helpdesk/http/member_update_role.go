package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type UpdateMemberRoleHandler struct {
	MembershipService *service.MembershipService
}

// ServeHTTP godoc
//
//	@Summary		Update Member Role
//	@Description	Change a member's role within its organization or team. The last owner of a scope cannot be demoted.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.UpdateMemberRoleRequest	true	"Role change"
//	@Success		200		{object}	helpdesksdk.UpdateMemberRoleResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse	"invalid role or last owner"
//	@Failure		401		{object}	helpdesksdk.ErrorResponse
//	@Failure		403		{object}	helpdesksdk.ErrorResponse
//	@Failure		404		{object}	helpdesksdk.ErrorResponse
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/organization/update-member-role [patch].
func (h *UpdateMemberRoleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req helpdesksdk.UpdateMemberRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	m, err := h.MembershipService.ChangeRole(r.Context(), actor, service.ChangeRoleInput{
		MemberID: req.MemberID,
		TeamID:   req.TeamID,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		writeServiceError(w, r, err, "role change")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.UpdateMemberRoleResponse{
		Success: true,
		Message: "Member role updated",
		Member:  toMember(m),
	})
}
