package httpHandler

import (
	"net/http"

	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	useCase *usecases.AnalyticsUseCase
	catalog *i18n.Catalog
}

func NewAnalyticsHandler(useCase *usecases.AnalyticsUseCase, catalog *i18n.Catalog) *AnalyticsHandler {
	return &AnalyticsHandler{useCase: useCase, catalog: catalog}
}

// GetAnalytics handles GET /api/v1/analytics
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	summary, err := h.useCase.Summarize(c.Request.Context(), sessionFrom(c))
	if err != nil {
		fail(c, h.catalog, err, authScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}
