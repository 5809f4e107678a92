// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/curioshop/curios-backend/internal/middleware"
	"github.com/curioshop/curios-backend/internal/services"
	"github.com/curioshop/curios-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /accounts/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body.")
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, user)
}

// POST /accounts/merchants/register
func (h *AuthHandler) RegisterMerchant(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body.")
		return
	}

	user, err := h.authService.RegisterMerchant(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, user)
}

// POST /accounts/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body.")
		return
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.OKResponse(c, tokens)
}

// POST /accounts/token/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Refresh token is required.")
		return
	}

	tokens, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.OKResponse(c, tokens)
}

// GET /accounts/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetUserByID(identity.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.OKResponse(c, user)
}
