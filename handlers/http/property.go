package httpHandler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"realty-server/entities"
	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

// NumericString accepts a JSON number or string and keeps the raw text
// so validation can happen in one place.
type NumericString string

func (n *NumericString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	*n = NumericString(b)
	return nil
}

type propertyRequest struct {
	Type        entities.PropertyType `json:"type" binding:"required"`
	Address     string                `json:"address" binding:"required"`
	Area        NumericString         `json:"area"`
	Description string                `json:"description"`
}

type PropertyHandler struct {
	useCase *usecases.PropertyUseCase
	catalog *i18n.Catalog
}

func NewPropertyHandler(useCase *usecases.PropertyUseCase, catalog *i18n.Catalog) *PropertyHandler {
	return &PropertyHandler{useCase: useCase, catalog: catalog}
}

// CreateProperty handles POST /api/v1/properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.catalog, propertyScope)
		return
	}
	property, err := h.useCase.Create(c.Request.Context(), sessionFrom(c), usecases.PropertyInput{
		Type:        req.Type,
		Address:     req.Address,
		Area:        string(req.Area),
		Description: req.Description,
	})
	if err != nil {
		fail(c, h.catalog, err, propertyScope)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": property})
}

// GetProperties handles GET /api/v1/properties
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	list, err := h.useCase.ListByOwner(c.Request.Context(), sessionFrom(c))
	if err != nil {
		fail(c, h.catalog, err, propertyScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list, "count": len(list)})
}

// GetProperty handles GET /api/v1/properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.useCase.Get(c.Request.Context(), sessionFrom(c), c.Param("id"))
	if err != nil {
		fail(c, h.catalog, err, propertyScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": property})
}
