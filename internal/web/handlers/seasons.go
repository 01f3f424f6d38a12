package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/color-season/internal/season"
)

// SeasonsHandler exposes the season records.
type SeasonsHandler struct{}

// NewSeasonsHandler creates a new seasons handler.
func NewSeasonsHandler() *SeasonsHandler {
	return &SeasonsHandler{}
}

// List returns all four seasons in Spring, Summer, Autumn, Winter order.
func (h *SeasonsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, season.All())
}

// Get returns a single season by name, case-insensitively.
func (h *SeasonsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	result, ok := season.Lookup(name)
	if !ok {
		respondError(w, http.StatusNotFound, "season not found")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
