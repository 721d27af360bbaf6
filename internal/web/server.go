// Package web serves the translator page over HTTP.
package web

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/valpere/rapidtran/internal/catalog"
	"github.com/valpere/rapidtran/internal/session"
	"github.com/valpere/rapidtran/internal/templates"
)

// MsgBusy is flashed when a form is submitted while the session's previous
// translation is still running.
const MsgBusy = "A translation is already in progress."

// Server handles HTTP requests for the translator page.
type Server struct {
	sessions *Sessions
	logger   *zap.Logger
}

// NewServer creates a server whose sessions are built by factory.
func NewServer(factory ViewFactory, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		sessions: NewSessions(factory),
		logger:   logger,
	}
}

// Sessions exposes the session store.
func (s *Server) Sessions() *Sessions {
	return s.sessions
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /translate", s.handleTranslate)
	mux.HandleFunc("POST /suggest/{index}", s.handleSuggest)
	mux.HandleFunc("POST /copy", s.handleCopy)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return s.logMiddleware(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Visitors without a session see the initial state; a session is created
	// by the first form they submit.
	data := templates.NewPageData(session.NewState(), "")
	if sess, ok := s.sessions.Lookup(r); ok {
		data = templates.NewPageData(sess.View.Snapshot(), sess.PopFlash())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.Page(data).Render(r.Context(), w); err != nil {
		s.logger.Error("render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)

		return
	}

	lang := r.PostFormValue("lang")
	if lang != "" {
		if _, ok := catalog.Lookup(lang); !ok {
			http.Error(w, "unknown language: "+lang, http.StatusBadRequest)

			return
		}
	}

	sess := s.sessions.FromRequest(w, r)
	sess.View.SetSourceText(r.PostFormValue("text"))
	if lang != "" {
		sess.View.SetTargetLanguage(lang)
	}

	err := sess.View.Translate(r.Context())
	switch {
	case errors.Is(err, session.ErrBusy):
		sess.Notify(MsgBusy)
	case err != nil:
		// The view already holds the message the page shows.
		s.logger.Debug("translate", zap.String("session", sess.ID), zap.Error(err))
	}

	redirectHome(w, r)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "invalid suggestion index", http.StatusBadRequest)

		return
	}

	sentence, ok := catalog.Suggestion(index)
	if !ok {
		http.Error(w, "suggestion not found", http.StatusNotFound)

		return
	}

	sess := s.sessions.FromRequest(w, r)
	sess.View.ApplySuggestion(sentence)

	redirectHome(w, r)
}

func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Lookup(r)
	if !ok {
		// Nothing translated yet, so nothing to copy.
		redirectHome(w, r)

		return
	}

	if err := sess.View.CopyResult(r.Context()); err != nil {
		s.logger.Warn("copy", zap.String("session", sess.ID), zap.Error(err))
	}

	redirectHome(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status))
	})
}
