package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/heritagepulse/pulse/internal/engine"
	"github.com/heritagepulse/pulse/internal/store"
)

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := engine.PersonalizedFeed(s.db, s.activity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if feed == nil {
		feed = []engine.RankedArticle{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(feed),
		"articles": feed,
	})
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.db.ListArticles()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if articles == nil {
		articles = []store.Article{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(articles),
		"articles": articles,
	})
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	article, err := s.db.GetArticle(articleID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	saved, _ := s.db.IsBookmarked(articleID)
	writeJSON(w, http.StatusOK, map[string]any{
		"article":    article,
		"bookmarked": saved,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q parameter required")
		return
	}

	results, err := s.db.SearchArticles(query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if results == nil {
		results = []store.Article{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":    query,
		"count":    len(results),
		"articles": results,
	})
}

func (s *Server) handleAddBookmark(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	article, err := s.db.GetArticle(articleID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.db.AddBookmark(articleID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Saving an article is an engagement signal too.
	s.tracker.Track(article.Category, engine.ActionBookmark)

	writeJSON(w, http.StatusCreated, map[string]string{"status": "bookmarked"})
}

func (s *Server) handleRemoveBookmark(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	err := s.db.RemoveBookmark(articleID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "bookmark not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (s *Server) handleListBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := s.db.ListBookmarks()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if bookmarks == nil {
		bookmarks = []store.Article{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(bookmarks),
		"articles": bookmarks,
	})
}

func (s *Server) handleTrackActivity(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Fire and forget: the write happens on the tracker's consumer.
	s.tracker.Track(req.Category, engine.Action(req.Action))
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) handleGetInterests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"interests": s.activity.Interests(),
	})
}

func (s *Server) handleSetInterests(w http.ResponseWriter, r *http.Request) {
	var req interestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.activity.SetInterests(req.Interests) {
		writeError(w, http.StatusInternalServerError, "failed to save interests")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"interests": req.Interests,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := s.reconciler.MergeAndSync(engine.AccountData{
		Interests: req.Interests,
		Activity:  req.Activity,
	})
	if err != nil {
		log.WithError(err).Warn("login merge failed, session left unsynced")
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.reconciler.EndSession(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.db.GetProfile()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleSetProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := s.db.GetProfile()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	profile := &store.Profile{
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		JoinedAt: existing.JoinedAt,
	}
	if err := s.db.SetProfile(profile); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
