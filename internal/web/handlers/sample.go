package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kozaktomas/color-season/internal/constants"
	"github.com/kozaktomas/color-season/internal/sampler"
	"github.com/rs/zerolog/log"
)

const (
	errInvalidCoordinates = "invalid coordinates"
	errUnsupportedFormat  = "unsupported image format"
	errOutOfBounds        = "coordinates outside image"
	errSampleFailed       = "Failed to sample color"
)

// SampleHandler reads a single pixel out of an uploaded photo.
type SampleHandler struct {
	sampler       sampler.Sampler
	maxUploadSize int64
}

// NewSampleHandler creates a new sample handler. A nil sampler uses sampler.Canvas.
func NewSampleHandler(s sampler.Sampler) *SampleHandler {
	if s == nil {
		s = sampler.Canvas{}
	}
	return &SampleHandler{
		sampler:       s,
		maxUploadSize: constants.MaxUploadSize,
	}
}

// formFloat parses a coordinate form field. NaN, infinities, negative and
// out-of-range values are rejected.
func formFloat(r *http.Request, name string, required bool) (float64, bool) {
	raw := r.FormValue(name)
	if raw == "" {
		return 0, !required
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !sampler.ValidCoordinate(v) {
		return 0, false
	}
	return v, true
}

// Sample returns the "#rrggbb" color at (x, y). When display_width and
// display_height are given, the point is scaled from the displayed size to
// the image's natural size.
func (h *SampleHandler) Sample(w http.ResponseWriter, r *http.Request) {
	if !parseUpload(w, r, h.maxUploadSize) {
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, errNoFile)
		return
	}
	defer file.Close()

	x, okX := formFloat(r, "x", true)
	y, okY := formFloat(r, "y", true)
	displayW, okW := formFloat(r, "display_width", false)
	displayH, okH := formFloat(r, "display_height", false)
	if !okX || !okY || !okW || !okH {
		respondError(w, http.StatusBadRequest, errInvalidCoordinates)
		return
	}

	img, format, err := sampler.Decode(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, errUnsupportedFormat)
		return
	}

	p, err := sampler.ScalePoint(x, y, displayW, displayH, img.Bounds())
	if err != nil {
		respondError(w, http.StatusBadRequest, errInvalidCoordinates)
		return
	}

	rgb, err := h.sampler.SamplePixel(img, p.X, p.Y)
	switch {
	case errors.Is(err, sampler.ErrOutOfBounds):
		respondError(w, http.StatusBadRequest, errOutOfBounds)
		return
	case err != nil:
		log.Ctx(r.Context()).Error().Err(err).Str("format", format).Msg("Pixel sampling failed")
		respondError(w, http.StatusInternalServerError, errSampleFailed)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"color": sampler.Hex(rgb),
	})
}
