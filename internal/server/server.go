package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/heritagepulse/pulse/internal/engine"
	"github.com/heritagepulse/pulse/internal/store"
)

// Server is the pulse HTTP API server.
type Server struct {
	db         *store.DB
	activity   *engine.ActivityStore
	tracker    *engine.Tracker
	reconciler *engine.Reconciler
	router     chi.Router
	version    string
	started    time.Time
}

// New creates a new Server over the given database and tracker.
func New(db *store.DB, tracker *engine.Tracker, version string) *Server {
	activity := engine.NewActivityStore(db)
	s := &Server{
		db:         db,
		activity:   activity,
		tracker:    tracker,
		reconciler: engine.NewReconciler(activity),
		version:    version,
		started:    time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/feed", s.handleFeed)
		r.Get("/articles", s.handleListArticles)
		r.Get("/articles/{articleID}", s.handleGetArticle)
		r.Get("/search", s.handleSearch)

		r.Post("/articles/{articleID}/bookmark", s.handleAddBookmark)
		r.Delete("/articles/{articleID}/bookmark", s.handleRemoveBookmark)
		r.Get("/bookmarks", s.handleListBookmarks)

		r.Post("/activity", s.handleTrackActivity)
		r.Get("/interests", s.handleGetInterests)
		r.Put("/interests", s.handleSetInterests)

		r.Post("/session/login", s.handleLogin)
		r.Post("/session/logout", s.handleLogout)

		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handleSetProfile)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbOK := true
	if err := s.db.Ping(); err != nil {
		dbOK = false
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
		"uptime":  time.Since(s.started).Seconds(),
		"db":      dbOK,
		"db_path": s.db.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
