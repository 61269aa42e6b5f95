package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type CreateTeamHandler struct {
	MembershipService *service.MembershipService
}

// ServeHTTP godoc
//
//	@Summary		Create Team
//	@Description	Create a team and make the caller its owner (organization owners) or admin (organization admins).
//	@Description	organizationId defaults to the caller's active organization.
//	@Tags			Teams
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.CreateTeamRequest	true	"Team"
//	@Success		200		{object}	helpdesksdk.CreateTeamResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse	"missing name or duplicate team name"
//	@Failure		401		{object}	helpdesksdk.ErrorResponse
//	@Failure		403		{object}	helpdesksdk.ErrorResponse
//	@Failure		404		{object}	helpdesksdk.ErrorResponse
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/organization/create-team [post].
func (h *CreateTeamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req helpdesksdk.CreateTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.OrganizationID == "" {
		req.OrganizationID = actor.ActiveOrganizationID
	}

	team, err := h.MembershipService.CreateTeam(r.Context(), actor, service.CreateTeamInput{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
	})
	if err != nil {
		writeServiceError(w, r, err, "team creation")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.CreateTeamResponse{Success: true, Team: toTeam(team)})
}
