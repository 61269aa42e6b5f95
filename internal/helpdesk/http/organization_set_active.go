package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type SetActiveOrganizationHandler struct {
	OrganizationService *service.OrganizationService
}

// ServeHTTP godoc
//
//	@Summary		Set Active Organization
//	@Description	Switch the current session to another organization the caller belongs to.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.SetActiveOrganizationRequest	true	"Organization"
//	@Success		200		{object}	helpdesksdk.SetActiveOrganizationResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse
//	@Failure		401		{object}	helpdesksdk.ErrorResponse
//	@Failure		403		{object}	helpdesksdk.ErrorResponse	"not a member"
//	@Failure		404		{object}	helpdesksdk.ErrorResponse
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/organization/set-active [post].
func (h *SetActiveOrganizationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req helpdesksdk.SetActiveOrganizationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.OrganizationService.SetActive(r.Context(), actor, req.OrganizationID); err != nil {
		writeServiceError(w, r, err, "set active organization")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.SetActiveOrganizationResponse{
		Success:              true,
		ActiveOrganizationID: req.OrganizationID,
	})
}
