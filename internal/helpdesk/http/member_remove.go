package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type RemoveMemberHandler struct {
	MembershipService *service.MembershipService
}

// ServeHTTP godoc
//
//	@Summary		Remove Member
//	@Description	Remove a membership row. Omit teamId for organization-level rows. Members may remove themselves.
//	@Tags			Members
//	@Produce		json
//	@Param			memberId	query		string	true	"Member ID"
//	@Param			teamId		query		string	false	"Team the member belongs to"
//	@Success		200			{object}	helpdesksdk.MessageResponse
//	@Failure		400			{object}	helpdesksdk.ErrorResponse	"last owner"
//	@Failure		401			{object}	helpdesksdk.ErrorResponse
//	@Failure		403			{object}	helpdesksdk.ErrorResponse
//	@Failure		404			{object}	helpdesksdk.ErrorResponse
//	@Failure		500			{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/organization/remove-team-member [delete].
func (h *RemoveMemberHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	err := h.MembershipService.RemoveMember(r.Context(), actor, service.RemoveMemberInput{
		MemberID: q.Get("memberId"),
		TeamID:   q.Get("teamId"),
	})
	if err != nil {
		writeServiceError(w, r, err, "member removal")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.MessageResponse{Success: true, Message: "Member removed"})
}
