package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/config"
	"github.com/BruksfildServices01/pulcro-admin/internal/dto"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/httpresp"
	"github.com/BruksfildServices01/pulcro-admin/internal/middleware"
	"github.com/BruksfildServices01/pulcro-admin/internal/usecase/account"
)

type AuthHandler struct {
	config *config.Config
	login  *account.Login
	logout *account.Logout
}

func NewAuthHandler(
	cfg *config.Config,
	login *account.Login,
	logout *account.Logout,
) *AuthHandler {
	return &AuthHandler{config: cfg, login: login, logout: logout}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Usuario y contraseña son obligatorios.")
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(h.config, user, time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	httpresp.OK(c, dto.LoginResponse{
		User:  dto.NewUserDTO(user),
		Token: token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	httpresp.NoContent(c)
}
