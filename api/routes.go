package api

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/minagishl/command-builder/screen"
)

func RegisterRoutes(manager *screen.Manager, staticFS fs.FS) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{manager: manager}

	// Builders API
	r.Get("/api/builders", h.listBuilders)
	r.Get("/api/builders/{key}", h.getBuilder)
	r.Post("/api/builders/{key}/compile", h.compile)

	// Screens API
	r.Get("/api/screens", h.listScreens)
	r.Post("/api/screens", h.createScreen)
	r.Get("/api/screens/{id}", h.getScreen)
	r.Put("/api/screens/{id}/options", h.setOptions)
	r.Post("/api/screens/{id}/preset", h.applyPreset)
	r.Delete("/api/screens/{id}", h.discardScreen)

	// WebSocket: live recompile channel for one mounted screen.
	r.Get("/api/screens/{id}/ws", h.handleWS)

	// Static sub-FS: strip the "web/" prefix present in the embed.FS.
	// In dev mode staticFS is already rooted at the frontend dir, so Sub
	// returns a wrapper unconditionally (no error) but the sub-FS would
	// look for web/* which doesn't exist. Probe index.html to detect this.
	staticSub, err := fs.Sub(staticFS, "web")
	if err != nil {
		staticSub = staticFS
	} else if _, statErr := fs.Stat(staticSub, "index.html"); statErr != nil {
		staticSub = staticFS
	}

	// Serve HTML pages by reading from the FS directly.
	// Using http.FileServer with r.URL.Path ending in "index.html" triggers
	// Go's built-in redirect to "./" — avoid that by reading the file manually.
	r.Get("/", serveFile(staticSub, "index.html"))
	r.Get("/builder/{key}", serveFile(staticSub, "builder.html"))

	// Static assets — use standard file server
	fileServer := http.FileServer(http.FS(staticSub))
	r.Get("/css/*", fileServer.ServeHTTP)
	r.Get("/js/*", fileServer.ServeHTTP)

	return r
}

// serveFile returns a handler that reads a single file from fsys and sends it.
func serveFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
	}
}

type handler struct {
	manager *screen.Manager
}
