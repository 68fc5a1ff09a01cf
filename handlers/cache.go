package handlers

import (
	"net/http"

	"realty-server/i18n"
	"realty-server/services"
	"realty-server/ws"

	"github.com/gin-gonic/gin"
)

// CacheHandler exposes the in-memory buffers: the snapshot cache behind
// the realtime hub and the pending activity entries.
type CacheHandler struct {
	mgr      *ws.Manager
	recorder *services.ActivityRecorder
	catalog  *i18n.Catalog
}

func NewCacheHandler(mgr *ws.Manager, recorder *services.ActivityRecorder, catalog *i18n.Catalog) *CacheHandler {
	return &CacheHandler{
		mgr:      mgr,
		recorder: recorder,
		catalog:  catalog,
	}
}

// FlushActivity handles POST /api/v1/admin/activity/flush
func (h *CacheHandler) FlushActivity(c *gin.Context) {
	pending := h.recorder.Pending()
	if err := h.recorder.Flush(c.Request.Context()); err != nil {
		localizedError(c, h.catalog, http.StatusInternalServerError, i18n.InternalError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "processed", "entries": pending})
}

// GetCacheStats handles GET /api/v1/admin/realtime
func (h *CacheHandler) GetCacheStats(c *gin.Context) {
	stats := h.mgr.Stats()
	stats["pending_activity"] = h.recorder.Pending()
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"stats":       stats,
		"connections": h.mgr.List(),
	})
}
