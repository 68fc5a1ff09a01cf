package httpHandler

import (
	"net/http"

	"realty-server/entities"
	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase *usecases.SessionUseCase
	catalog *i18n.Catalog
}

func NewAuthHandler(useCase *usecases.SessionUseCase, catalog *i18n.Catalog) *AuthHandler {
	return &AuthHandler{useCase: useCase, catalog: catalog}
}

type credentialsRequest struct {
	Email    string        `json:"email" binding:"required"`
	Password string        `json:"password" binding:"required"`
	Role     entities.Role `json:"role" binding:"required"`
}

// loginRequest leaves the role optional; it is only compared when
// login role enforcement is on.
type loginRequest struct {
	Email    string        `json:"email" binding:"required"`
	Password string        `json:"password" binding:"required"`
	Role     entities.Role `json:"role"`
}

type demoRequest struct {
	PhoneNumber string        `json:"phoneNumber" binding:"required"`
	Role        entities.Role `json:"role" binding:"required"`
}

type resetRequest struct {
	Email string `json:"email" binding:"required"`
}

type resetConfirmRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.catalog, authScope)
		return
	}
	session, err := h.useCase.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		fail(c, h.catalog, err, authScope)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": session})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.catalog, authScope)
		return
	}
	session, err := h.useCase.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		fail(c, h.catalog, err, authScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": session})
}

// Demo handles POST /api/v1/auth/demo
func (h *AuthHandler) Demo(c *gin.Context) {
	var req demoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.catalog, authScope)
		return
	}
	session, err := h.useCase.StartDemo(c.Request.Context(), req.PhoneNumber, req.Role)
	if err != nil {
		fail(c, h.catalog, err, authScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": session})
}

// RequestPasswordReset handles POST /api/v1/auth/password-reset
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, h.catalog, http.StatusBadRequest, i18n.ResetFailed)
		return
	}
	if err := h.useCase.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		fail(c, h.catalog, err, authScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message(c, h.catalog, i18n.ResetSent)})
}

// ConfirmPasswordReset handles POST /api/v1/auth/password-reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req resetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.catalog, authScope)
		return
	}
	if err := h.useCase.ConfirmPasswordReset(c.Request.Context(), req.Token, req.Password); err != nil {
		fail(c, h.catalog, err, authScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message(c, h.catalog, i18n.PasswordChanged)})
}

// Logout handles POST /api/v1/auth/logout. Ends demo sessions too.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.useCase.Logout(c.Request.Context(), sessionFrom(c)); err != nil {
		fail(c, h.catalog, err, authScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message(c, h.catalog, i18n.LoggedOut)})
}

// Session handles GET /api/v1/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	session := *sessionFrom(c)
	session.Token = ""
	c.JSON(http.StatusOK, gin.H{"data": session})
}
