package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type ListMembersHandler struct {
	MembershipService *service.MembershipService
}

// ServeHTTP godoc
//
//	@Summary		List Members
//	@Description	List organization-level members, or a team's members when teamId is given.
//	@Description	organizationId defaults to the caller's active organization.
//	@Tags			Members
//	@Produce		json
//	@Param			organizationId	query		string	false	"Organization ID"
//	@Param			teamId			query		string	false	"Team ID"
//	@Success		200				{object}	helpdesksdk.ListMembersResponse
//	@Failure		400				{object}	helpdesksdk.ErrorResponse
//	@Failure		401				{object}	helpdesksdk.ErrorResponse
//	@Failure		403				{object}	helpdesksdk.ErrorResponse
//	@Failure		404				{object}	helpdesksdk.ErrorResponse
//	@Failure		500				{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/organization/members [get].
func (h *ListMembersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	orgID := q.Get("organizationId")
	if orgID == "" {
		orgID = actor.ActiveOrganizationID
	}

	members, err := h.MembershipService.ListMembers(r.Context(), actor, orgID, q.Get("teamId"))
	if err != nil {
		writeServiceError(w, r, err, "member listing")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.ListMembersResponse{Success: true, Members: toMembers(members)})
}
