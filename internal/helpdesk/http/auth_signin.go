package http

import (
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
)

type SignInHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Sign In
//	@Description	Exchange e-mail and password for a session access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		helpdesksdk.SignInRequest	true	"Credentials"
//	@Success		200		{object}	helpdesksdk.SignInResponse
//	@Failure		400		{object}	helpdesksdk.ErrorResponse
//	@Failure		401		{object}	helpdesksdk.ErrorResponse	"invalid email or password"
//	@Failure		429		{object}	helpdesksdk.ErrorResponse
//	@Failure		500		{object}	helpdesksdk.ErrorResponse
//	@Router			/api/auth/sign-in [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req helpdesksdk.SignInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	res, err := h.AccountService.SignIn(r.Context(), service.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err, "sign-in")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, helpdesksdk.SignInResponse{
		Success:   true,
		Token:     res.Token,
		ExpiresAt: res.Session.ExpiresAt,
		User:      toUser(res.User),
	})
}
