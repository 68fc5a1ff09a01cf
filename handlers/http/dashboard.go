package httpHandler

import (
	"net/http"

	"realty-server/i18n"
	"realty-server/usecases"

	"github.com/gin-gonic/gin"
)

type featureResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
}

type dashboardResponse struct {
	View       usecases.View     `json:"view"`
	Variant    string            `json:"variant"`
	Title      string            `json:"title,omitempty"`
	Demo       bool              `json:"demo"`
	Banner     string            `json:"banner,omitempty"`
	Message    string            `json:"message,omitempty"`
	Features   []featureResponse `json:"features"`
	Navigation []usecases.View   `json:"navigation"`
	CanLogout  bool              `json:"canLogout"`
}

type DashboardHandler struct {
	useCase *usecases.DashboardUseCase
	catalog *i18n.Catalog
}

func NewDashboardHandler(useCase *usecases.DashboardUseCase, catalog *i18n.Catalog) *DashboardHandler {
	return &DashboardHandler{useCase: useCase, catalog: catalog}
}

// GetDashboard handles GET /api/v1/dashboard?view=
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	d, err := h.useCase.Route(sessionFrom(c), usecases.View(c.Query("view")))
	if err != nil {
		fail(c, h.catalog, err, viewScope)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.localize(c, d)})
}

func (h *DashboardHandler) localize(c *gin.Context, d usecases.Descriptor) dashboardResponse {
	text := func(key i18n.Key) string {
		if key == "" {
			return ""
		}
		return message(c, h.catalog, key)
	}
	resp := dashboardResponse{
		View:       d.View,
		Variant:    d.Variant,
		Title:      text(d.Title),
		Demo:       d.Demo,
		Banner:     text(d.Banner),
		Message:    text(d.Message),
		Features:   make([]featureResponse, 0, len(d.Features)),
		Navigation: d.Navigation,
		CanLogout:  true,
	}
	for _, f := range d.Features {
		resp.Features = append(resp.Features, featureResponse{
			Title:       text(f.Title),
			Description: text(f.Description),
			Action:      f.Action,
		})
	}
	return resp
}
