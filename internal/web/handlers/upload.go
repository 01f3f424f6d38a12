package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/kozaktomas/color-season/internal/constants"
	"github.com/kozaktomas/color-season/internal/storage"
	"github.com/rs/zerolog/log"
)

const (
	errNoFile       = "No file provided"
	errFileTooLarge = "File too large"
	errUploadFailed = "Upload failed"
)

// UploadHandler handles photo upload endpoints.
type UploadHandler struct {
	store         storage.Store
	now           func() time.Time
	maxUploadSize int64
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store storage.Store) *UploadHandler {
	return &UploadHandler{
		store:         store,
		now:           time.Now,
		maxUploadSize: constants.MaxUploadSize,
	}
}

// parseUpload bounds the request body to limit bytes and parses the multipart
// form. It writes the error response itself and reports whether parsing
// succeeded.
func parseUpload(w http.ResponseWriter, r *http.Request, limit int64) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(constants.MultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, errFileTooLarge)
			return false
		}
		respondError(w, http.StatusBadRequest, errNoFile)
		return false
	}
	return true
}

// Upload stores the multipart "file" part and returns its public URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !parseUpload(w, r, h.maxUploadSize) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, errNoFile)
		return
	}
	defer file.Close()

	key := storage.ObjectKey(h.now(), header.Filename)
	obj, err := h.store.Put(r.Context(), key, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		log.Ctx(r.Context()).Error().
			Err(err).
			Str("filename", sanitizeForLog(header.Filename)).
			Str("key", key).
			Msg("Upload failed")
		respondError(w, http.StatusInternalServerError, errUploadFailed)
		return
	}

	log.Ctx(r.Context()).Info().
		Str("key", obj.Key).
		Int64("size", obj.Size).
		Str("backend", h.store.Name()).
		Msg("Photo uploaded")

	respondJSON(w, http.StatusOK, map[string]string{
		"url": obj.URL,
	})
}
