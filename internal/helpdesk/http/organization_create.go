package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type CreateOrganizationHandler struct {
	OrganizationService *service.OrganizationService
}

// ServeHTTP godoc
//
//	@Summary		Create Organization
//	@Description	Create an organization owned by the caller. The slug is derived from the name when omitted.
//	@Description	The new organization becomes active when the caller has none.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.CreateOrganizationRequest	true	"Organization"
//	@Success		200		{object}	helpdesksdk.CreateOrganizationResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse	"invalid input or slug taken"
//	@Failure		401		{object}	helpdesksdk.ErrorResponse
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/organization/create [post].
func (h *CreateOrganizationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req helpdesksdk.CreateOrganizationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	org, err := h.OrganizationService.Create(r.Context(), actor, service.CreateOrganizationInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		writeServiceError(w, r, err, "organization creation")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.CreateOrganizationResponse{
		Success:      true,
		Organization: toOrganization(org),
	})
}
