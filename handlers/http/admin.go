package httpHandler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	useCase *usecases.AdminUseCase
	catalog *i18n.Catalog
}

func NewAdminHandler(useCase *usecases.AdminUseCase, catalog *i18n.Catalog) *AdminHandler {
	return &AdminHandler{useCase: useCase, catalog: catalog}
}

// GetUsers handles GET /api/v1/admin/users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.useCase.ListUsers(c.Request.Context(), sessionFrom(c))
	if err != nil {
		fail(c, h.catalog, err, adminScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
}

// GetUser handles GET /api/v1/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.useCase.GetUser(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		fail(c, h.catalog, err, adminScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// UpdateUser handles PUT /api/v1/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req usecases.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.catalog, adminScope)
		return
	}
	user, err := h.useCase.UpdateUser(c.Request.Context(), sessionFrom(c), c.Param("id"), req)
	if err != nil {
		fail(c, h.catalog, err, adminScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// GetLeads handles GET /api/v1/admin/leads
func (h *AdminHandler) GetLeads(c *gin.Context) {
	leads, err := h.useCase.ListLeads(c.Request.Context(), sessionFrom(c))
	if err != nil {
		fail(c, h.catalog, err, adminScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": leads, "count": len(leads)})
}

// GetActivity handles GET /api/v1/admin/activity?limit=
func (h *AdminHandler) GetActivity(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(c, h.catalog, adminScope)
			return
		}
		limit = n
	}
	logs, err := h.useCase.ListActivity(c.Request.Context(), sessionFrom(c), limit)
	if err != nil {
		fail(c, h.catalog, err, adminScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs, "count": len(logs)})
}

// Export handles GET /api/v1/admin/export
func (h *AdminHandler) Export(c *gin.Context) {
	data, err := h.useCase.ExportWorkbook(c.Request.Context(), sessionFrom(c))
	if err != nil {
		fail(c, h.catalog, err, adminScope)
		return
	}
	name := fmt.Sprintf("realty-export-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
