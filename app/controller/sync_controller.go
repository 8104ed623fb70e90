package controller

import (
	"net/http"
	"strings"

	"ayurconnect/logging"
	"ayurconnect/service"

	"go.uber.org/zap"
)

// SyncController handles the image synchronization from Google Drive
type SyncController struct {
	syncService service.SyncServiceInterface
	folderID    string
	logger      *zap.Logger
}

// NewSyncController creates a new SyncController syncing folderID by default
func NewSyncController(syncService service.SyncServiceInterface, folderID string, logger *zap.Logger) *SyncController {
	return &SyncController{
		syncService: syncService,
		folderID:    folderID,
		logger:      logger,
	}
}

// SyncImages handles POST /admin/images/sync?folderId=&force=1
// Downloads the catalog images of the folder into the image cache
func (c *SyncController) SyncImages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	folderID := strings.TrimSpace(query.Get("folderId"))
	if folderID == "" {
		folderID = c.folderID
	}
	if folderID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: "folderId parameter is required when CATALOG_IMAGES_FOLDER_ID is not set",
		})
		return
	}

	images, stats, err := c.syncService.SyncCatalogImages(r.Context(), folderID, query.Get("force") == "1")
	if err != nil {
		logging.FromContext(r.Context(), c.logger).Error("image sync failed", zap.String("folder_id", folderID), zap.Error(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"stats":  stats,
		"images": images,
	})
}
