package httpHandler

import (
	"net/http"

	"realty-server/entities"
	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	useCase *usecases.ProfileUseCase
	catalog *i18n.Catalog
}

func NewProfileHandler(useCase *usecases.ProfileUseCase, catalog *i18n.Catalog) *ProfileHandler {
	return &ProfileHandler{useCase: useCase, catalog: catalog}
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.useCase.Get(c.Request.Context(), sessionFrom(c))
	if err != nil {
		s := profileScope
		s.failed = i18n.ProfileLoadFailed
		fail(c, h.catalog, err, s)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req entities.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.catalog, profileScope)
		return
	}
	user, err := h.useCase.Update(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		fail(c, h.catalog, err, profileScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message(c, h.catalog, i18n.ProfileUpdated),
		"data":    user,
	})
}
