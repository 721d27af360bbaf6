package web

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/valpere/rapidtran/internal/clipboard"
	"github.com/valpere/rapidtran/internal/session"
)

// CookieName carries the session id.
const CookieName = "rapidtran_session"

// ViewFactory builds the View for a new session. The clipboard and notifier
// belong to that session.
type ViewFactory func(clip session.Clipboard, notifier session.Notifier) *session.View

// Session is one browser's translator.
type Session struct {
	ID        string
	View      *session.View
	Clipboard *clipboard.Memory

	mu    sync.Mutex
	flash string
}

// Notify stores msg until the next page render.
func (s *Session) Notify(msg string) {
	s.mu.Lock()
	s.flash = msg
	s.mu.Unlock()
}

// PopFlash returns the pending notice and clears it.
func (s *Session) PopFlash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.flash
	s.flash = ""
	return msg
}

// Sessions keeps sessions in memory for the lifetime of the process.
type Sessions struct {
	mu      sync.Mutex
	byID    map[string]*Session
	factory ViewFactory
}

func NewSessions(factory ViewFactory) *Sessions {
	return &Sessions{
		byID:    make(map[string]*Session),
		factory: factory,
	}
}

// Get returns the session named by id, if any.
func (ss *Sessions) Get(id string) (*Session, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	s, ok := ss.byID[id]
	return s, ok
}

// New creates and registers a session with a fresh id.
func (ss *Sessions) New() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Clipboard: &clipboard.Memory{},
	}
	s.View = ss.factory(s.Clipboard, s)

	ss.mu.Lock()
	ss.byID[s.ID] = s
	ss.mu.Unlock()
	return s
}

// Len is the number of live sessions.
func (ss *Sessions) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.byID)
}

// Lookup returns the session named by the request cookie without creating
// one.
func (ss *Sessions) Lookup(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	return ss.Get(c.Value)
}

// FromRequest returns the session named by the request cookie, creating one
// and setting the cookie when the cookie is missing or unknown. Only
// handlers that change state call it.
func (ss *Sessions) FromRequest(w http.ResponseWriter, r *http.Request) *Session {
	if s, ok := ss.Lookup(r); ok {
		return s
	}

	s := ss.New()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}
