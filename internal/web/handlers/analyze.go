package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kozaktomas/color-season/internal/color"
	"github.com/kozaktomas/color-season/internal/constants"
	"github.com/kozaktomas/color-season/internal/season"
	"github.com/rs/zerolog/log"
)

const (
	errMissingColors  = "Missing required color values"
	errInvalidColor   = "Invalid color format"
	errAnalyzeFailure = "Failed to analyze colors"
	errBodyTooLarge   = "Request body too large"
)

// Classifier maps three colors to a season record.
type Classifier func(in season.Input) (season.Result, error)

// AnalyzeHandler handles the color analysis endpoint.
type AnalyzeHandler struct {
	classify Classifier
}

// NewAnalyzeHandler creates a new analyze handler. A nil classifier uses
// season.Classify.
func NewAnalyzeHandler(classify Classifier) *AnalyzeHandler {
	if classify == nil {
		classify = season.Classify
	}
	return &AnalyzeHandler{classify: classify}
}

// Analyze classifies the hair, eye and skin colors in the request body.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxJSONBodySize)

	var in season.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, errBodyTooLarge)
			return
		}
		respondError(w, http.StatusBadRequest, errMissingColors)
		return
	}

	result, err := h.classify(in)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, result)
	case errors.Is(err, season.ErrMissingColors):
		respondError(w, http.StatusBadRequest, errMissingColors)
	case errors.Is(err, color.ErrInvalidColorFormat):
		respondError(w, http.StatusBadRequest, errInvalidColor)
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg("Color analysis failed")
		respondError(w, http.StatusInternalServerError, errAnalyzeFailure)
	}
}
