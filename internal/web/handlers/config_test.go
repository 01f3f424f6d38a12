package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/color-season/internal/config"
)

func TestNewConfigHandler(t *testing.T) {
	cfg := &config.Config{}

	handler := NewConfigHandler(cfg)

	if handler == nil {
		t.Fatal("expected non-nil handler")
		return
	}

	if handler.config != cfg {
		t.Error("expected handler to hold reference to config")
	}
}

func TestConfigHandler_Get(t *testing.T) {
	tests := []struct {
		name    string
		backend string
	}{
		{"local", config.BackendLocal},
		{"s3", config.BackendS3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Storage.Backend = tc.backend
			handler := NewConfigHandler(cfg)

			req := httptest.NewRequest("GET", "/api/v1/config", nil)
			recorder := httptest.NewRecorder()

			handler.Get(recorder, req)

			assertStatusCode(t, recorder, http.StatusOK)
			assertContentType(t, recorder, "application/json")

			var result ConfigResponse
			parseJSONResponse(t, recorder, &result)
			if result.StorageBackend != tc.backend {
				t.Errorf("expected backend %s, got %s", tc.backend, result.StorageBackend)
			}
			if result.MaxUploadSize != 20<<20 {
				t.Errorf("expected max upload size %d, got %d", 20<<20, result.MaxUploadSize)
			}
			if result.PaletteSize != 5 {
				t.Errorf("expected palette size 5, got %d", result.PaletteSize)
			}
		})
	}
}
