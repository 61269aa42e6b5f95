package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type AddTeamMemberHandler struct {
	MembershipService *service.MembershipService
}

// ServeHTTP godoc
//
//	@Summary		Add Team Member
//	@Description	Add an existing organization member to a team. role defaults to member.
//	@Tags			Teams
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.AddTeamMemberRequest	true	"Member"
//	@Success		200		{object}	helpdesksdk.AddTeamMemberResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse	"invalid role or already in team"
//	@Failure		401		{object}	helpdesksdk.ErrorResponse
//	@Failure		403		{object}	helpdesksdk.ErrorResponse
//	@Failure		404		{object}	helpdesksdk.ErrorResponse	"team not found or user not in organization"
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/organization/add-team-member [post].
func (h *AddTeamMemberHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req helpdesksdk.AddTeamMemberRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	m, err := h.MembershipService.AddTeamMember(r.Context(), actor, service.AddTeamMemberInput{
		TeamID: req.TeamID,
		UserID: req.UserID,
		Role:   domain.Role(req.Role),
	})
	if err != nil {
		writeServiceError(w, r, err, "team member addition")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.AddTeamMemberResponse{Success: true, Member: toMember(m)})
}
