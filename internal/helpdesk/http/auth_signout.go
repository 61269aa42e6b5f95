package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type SignOutHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Sign Out
//	@Description	Revoke the current session. The access token stops working immediately.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	helpdesksdk.SuccessResponse
//	@Failure		401	{object}	helpdesksdk.ErrorResponse
//	@Failure		500	{object}	helpdesksdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/api/auth/sign-out [post].
func (h *SignOutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	if err := h.AccountService.SignOut(r.Context(), actor); err != nil {
		writeServiceError(w, r, err, "sign-out")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.SuccessResponse{Success: true})
}
