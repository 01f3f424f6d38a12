package handlers

import (
	"net/http"

	"github.com/kozaktomas/color-season/internal/config"
	"github.com/kozaktomas/color-season/internal/constants"
)

// ConfigHandler handles configuration endpoints
type ConfigHandler struct {
	config *config.Config
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		config: cfg,
	}
}

// ConfigResponse represents the configuration response
type ConfigResponse struct {
	StorageBackend string `json:"storage_backend"`
	MaxUploadSize  int    `json:"max_upload_size"`
	PaletteSize    int    `json:"palette_size"`
}

// Get returns the settings the UI needs before uploading.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ConfigResponse{
		StorageBackend: h.config.Storage.Backend,
		MaxUploadSize:  constants.MaxUploadSize,
		PaletteSize:    constants.PaletteSize,
	})
}
