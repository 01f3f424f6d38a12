package web

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/color-season/internal/storage"
	"github.com/kozaktomas/color-season/internal/web/handlers"
	"github.com/kozaktomas/color-season/internal/web/static"
	"github.com/rs/zerolog/log"
)

func (s *Server) setupRoutes() {
	// Create handlers
	analyzeHandler := handlers.NewAnalyzeHandler(nil)
	uploadHandler := handlers.NewUploadHandler(s.store)
	sampleHandler := handlers.NewSampleHandler(s.sampler)
	seasonsHandler := handlers.NewSeasonsHandler()
	configHandler := handlers.NewConfigHandler(s.config)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.HealthCheck)

		r.Post("/analyze-color", analyzeHandler.Analyze)
		r.Post("/upload-image", uploadHandler.Upload)
		r.Post("/sample-color", sampleHandler.Sample)

		r.Get("/seasons", seasonsHandler.List)
		r.Get("/seasons/{name}", seasonsHandler.Get)

		r.Get("/config", configHandler.Get)
	})

	// Uploaded photos, when they are kept on local disk
	if local, ok := s.store.(*storage.LocalStore); ok {
		s.router.Get(storage.DefaultLocalURLPrefix+"/*", serveUpload(local))
	}

	// Serve static files for frontend (SPA)
	s.router.Get("/*", s.serveSPA)
}

// serveUpload serves a single stored object. There are no directory listings.
func serveUpload(local *storage.LocalStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, storage.DefaultLocalURLPrefix+"/")
		f, info, err := local.Open(key)
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Str("key", key).Msg("Failed to open upload")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer f.Close()

		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	}
}

// contentTypes maps static asset extensions to their content type.
var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript; charset=utf-8",
	".json":  "application/json",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".ico":   "image/x-icon",
	".woff2": "font/woff2",
	".woff":  "font/woff",
}

func contentTypeFor(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		if ct, ok := contentTypes[path[i:]]; ok {
			return ct
		}
	}
	return "application/octet-stream"
}

// serveSPA serves the single-page application
func (s *Server) serveSPA(w http.ResponseWriter, r *http.Request) {
	if static.HasDist() {
		fs := static.GetFileSystem()
		path := r.URL.Path
		if path == "/" {
			path = "/index.html"
		}

		f, err := fs.Open(path)
		if err == nil {
			defer f.Close()

			stat, err := f.Stat()
			if err == nil && !stat.IsDir() {
				w.Header().Set("Content-Type", contentTypeFor(path))

				// Add cache headers for static assets
				if strings.HasPrefix(path, "/assets/") {
					w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				}

				w.WriteHeader(http.StatusOK)
				io.Copy(w, f)
				return
			}
		}

		// For SPA routing, serve index.html for non-asset paths
		if !strings.HasPrefix(path, "/assets/") {
			indexFile, err := fs.Open("/index.html")
			if err == nil {
				defer indexFile.Close()
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				io.Copy(w, indexFile)
				return
			}
		}
	}

	http.NotFound(w, r)
}
