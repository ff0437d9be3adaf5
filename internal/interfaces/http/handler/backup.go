package handler

import (
	"net/http"
	"time"

	backupapp "github.com/emtienda/backend/internal/application/backup"
	"github.com/gin-gonic/gin"
)

// BackupHandler handles full-state export and restore endpoints
type BackupHandler struct {
	BaseHandler
	snapshotService *backupapp.SnapshotService
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(snapshotService *backupapp.SnapshotService) *BackupHandler {
	return &BackupHandler{snapshotService: snapshotService}
}

// RegisterRoutes registers backup routes
func (h *BackupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.Export)
		backup.POST("/import", h.Import)
	}
}

// Export downloads the full state as a JSON backup document
func (h *BackupHandler) Export(c *gin.Context) {
	snapshot, err := h.snapshotService.Export(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	filename := "respaldo_" + time.Now().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, snapshot)
}

// Import replaces the catalog, the sale history and the exchange rate
// with a backup document. Destructive, so ?confirm=true is required.
func (h *BackupHandler) Import(c *gin.Context) {
	if c.Query("confirm") != "true" {
		h.BadRequest(c, "Restoring a backup replaces all data; pass confirm=true")
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		h.BadRequest(c, "Could not read request body")
		return
	}

	if err := h.snapshotService.Import(c.Request.Context(), raw); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
