package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type SignUpHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Sign Up
//	@Description	Register a new user account. The e-mail address is matched case-insensitively.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.SignUpRequest	true	"Account details"
//	@Success		200		{object}	helpdesksdk.SignUpResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse	"invalid input or e-mail already registered"
//	@Failure		429		{object}	helpdesksdk.ErrorResponse
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Router			/api/auth/sign-up [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req helpdesksdk.SignUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	u, err := h.AccountService.SignUp(r.Context(), service.SignUpInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err, "sign-up")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.SignUpResponse{Success: true, User: toUser(u)})
}
