package handler

import (
	"net/http"

	"essen/internal/dto"
	"essen/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /v1/auth/login
//
//	@Summary	Autentica un usuario y devuelve un JWT
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credenciales	body		dto.LoginRequest	true	"Credenciales"
//	@Success	200				{object}	dto.LoginResponse
//	@Failure	401				{object}	apierror.APIError
//	@Router		/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
