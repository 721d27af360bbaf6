package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/valpere/rapidtran/internal/history"
	"github.com/valpere/rapidtran/internal/session"
	"github.com/valpere/rapidtran/internal/testutil"
	"github.com/valpere/rapidtran/internal/translator"
)

func newTestServer(t *testing.T, svc translator.TranslationService) *Server {
	t.Helper()

	logger := zaptest.NewLogger(t)
	factory := func(clip session.Clipboard, notifier session.Notifier) *session.View {
		return session.NewView(svc, session.Options{
			NewID:     history.NewCounter("h"),
			Clipboard: clip,
			Notifier:  notifier,
			Logger:    logger,
		})
	}

	return NewServer(factory, logger)
}

// do sends a request, carrying cookie when set, and returns the recorder
// and the session cookie in effect afterwards.
func do(t *testing.T, h http.Handler, method, target string, form url.Values, cookie *http.Cookie) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return rec, c
		}
	}
	return rec, cookie
}

func TestServer_HandleIndex(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})
	handler := srv.Handler()

	rec, cookie := do(t, handler, http.MethodGet, "/", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Type or paste English text here...")
	assert.Contains(t, rec.Body.String(), `<option value="hi" selected>Hindi</option>`)
	assert.Nil(t, cookie, "viewing the page does not start a session")
	assert.Equal(t, 0, srv.Sessions().Len())
}

func TestServer_HandleIndex_CookielessVisitsDoNotGrowSessions(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})
	handler := srv.Handler()

	for range 1000 {
		rec, _ := do(t, handler, http.MethodGet, "/", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	_, _ = do(t, handler, http.MethodGet, "/", nil, &http.Cookie{Name: CookieName, Value: "stale"})

	assert.Equal(t, 0, srv.Sessions().Len())
}

func TestServer_HandleIndex_ExistingSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})
	handler := srv.Handler()

	_, cookie := do(t, handler, http.MethodPost, "/suggest/0", nil, nil)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	rec, again := do(t, handler, http.MethodGet, "/", nil, cookie)
	assert.Equal(t, cookie.Value, again.Value)
	assert.Contains(t, rec.Body.String(), "Hello, how are you?")
	assert.Equal(t, 1, srv.Sessions().Len())
}

func TestServer_UnknownCookieStartsNewSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})

	_, cookie := do(t, srv.Handler(), http.MethodPost, "/suggest/1", nil, &http.Cookie{Name: CookieName, Value: "stale"})

	require.NotNil(t, cookie)
	assert.NotEqual(t, "stale", cookie.Value)
	assert.Equal(t, 1, srv.Sessions().Len())
}

func TestServer_HandleTranslate(t *testing.T) {
	t.Parallel()

	svc := &testutil.StubService{TranslateFunc: testutil.Returning("नमस्ते")}
	srv := newTestServer(t, svc)
	handler := srv.Handler()

	form := url.Values{"text": {"Hello"}, "lang": {"hi"}}
	rec, cookie := do(t, handler, http.MethodPost, "/translate", form, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	reqs := svc.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Hello", reqs[0].Text)
	assert.Equal(t, "hi", reqs[0].TargetLang)

	page, _ := do(t, handler, http.MethodGet, "/", nil, cookie)
	body := page.Body.String()
	assert.Contains(t, body, "नमस्ते")
	assert.Contains(t, body, "EN → Hindi")
	assert.Contains(t, body, "Last 1 items")
}

func TestServer_HandleTranslate_EmptyInput(t *testing.T) {
	t.Parallel()

	svc := &testutil.StubService{}
	srv := newTestServer(t, svc)
	handler := srv.Handler()

	rec, cookie := do(t, handler, http.MethodPost, "/translate", url.Values{"text": {"   "}, "lang": {"fr"}}, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, svc.Requests())

	page, _ := do(t, handler, http.MethodGet, "/", nil, cookie)
	assert.Contains(t, page.Body.String(), session.MsgEmptyInput)
	assert.Contains(t, page.Body.String(), `<option value="fr" selected>French</option>`)
}

func TestServer_HandleTranslate_APIError(t *testing.T) {
	t.Parallel()

	svc := &testutil.StubService{TranslateFunc: testutil.Failing(&translator.APIError{StatusCode: 429, Message: "rate limited"})}
	srv := newTestServer(t, svc)
	handler := srv.Handler()

	_, cookie := do(t, handler, http.MethodPost, "/translate", url.Values{"text": {"Hello"}, "lang": {"hi"}}, nil)
	page, _ := do(t, handler, http.MethodGet, "/", nil, cookie)

	assert.Contains(t, page.Body.String(), "API error 429: rate limited")
	assert.Contains(t, page.Body.String(), "Translation will appear here…")
}

func TestServer_HandleTranslate_UnknownLanguage(t *testing.T) {
	t.Parallel()

	svc := &testutil.StubService{}
	srv := newTestServer(t, svc)

	rec, _ := do(t, srv.Handler(), http.MethodPost, "/translate", url.Values{"text": {"Hello"}, "lang": {"xx"}}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.Requests())
}

func TestServer_HandleSuggest(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})
	handler := srv.Handler()

	rec, cookie := do(t, handler, http.MethodPost, "/suggest/1", nil, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	sess, ok := srv.Sessions().Get(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "Thank you for your help.", sess.View.Snapshot().SourceText)
}

func TestServer_HandleSuggest_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		code int
	}{
		{"/suggest/abc", http.StatusBadRequest},
		{"/suggest/5", http.StatusNotFound},
		{"/suggest/-1", http.StatusNotFound},
	}

	srv := newTestServer(t, &testutil.StubService{})
	for _, tt := range tests {
		rec, _ := do(t, srv.Handler(), http.MethodPost, tt.path, nil, nil)
		assert.Equal(t, tt.code, rec.Code, tt.path)
	}
}

func TestServer_HandleCopy(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{TranslateFunc: testutil.Returning("Bonjour")})
	handler := srv.Handler()

	_, cookie := do(t, handler, http.MethodPost, "/translate", url.Values{"text": {"Hello"}, "lang": {"fr"}}, nil)
	rec, _ := do(t, handler, http.MethodPost, "/copy", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	sess, ok := srv.Sessions().Get(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "Bonjour", sess.Clipboard.Text())

	page, _ := do(t, handler, http.MethodGet, "/", nil, cookie)
	assert.Contains(t, page.Body.String(), session.MsgCopied)

	next, _ := do(t, handler, http.MethodGet, "/", nil, cookie)
	assert.NotContains(t, next.Body.String(), session.MsgCopied, "flash shown once")
}

func TestServer_HandleCopy_WithoutSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})
	rec, cookie := do(t, srv.Handler(), http.MethodPost, "/copy", nil, nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Nil(t, cookie)
	assert.Equal(t, 0, srv.Sessions().Len())
}

func TestServer_HandleCopy_Failure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})
	handler := srv.Handler()

	_, cookie := do(t, handler, http.MethodPost, "/translate", url.Values{"text": {"Hello"}}, nil)
	sess, ok := srv.Sessions().Get(cookie.Value)
	require.True(t, ok)
	sess.Clipboard.Err = assert.AnError

	do(t, handler, http.MethodPost, "/copy", nil, cookie)
	page, _ := do(t, handler, http.MethodGet, "/", nil, cookie)

	assert.Contains(t, page.Body.String(), session.MsgCopyFailed)
	assert.Contains(t, page.Body.String(), "[hi] Hello")
}

func TestServer_HandleTranslate_Busy(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	svc := &testutil.StubService{TranslateFunc: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
		if req.Text == "slow" {
			close(started)
			<-release
		}
		return &translator.ServiceResult{TranslatedText: "done"}, nil
	}}
	srv := newTestServer(t, svc)
	handler := srv.Handler()

	_, cookie := do(t, handler, http.MethodPost, "/suggest/0", nil, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		do(t, handler, http.MethodPost, "/translate", url.Values{"text": {"slow"}}, cookie)
	}()
	<-started

	do(t, handler, http.MethodPost, "/translate", url.Values{"text": {"second"}}, cookie)
	close(release)
	<-done

	page, _ := do(t, handler, http.MethodGet, "/", nil, cookie)
	assert.Contains(t, page.Body.String(), MsgBusy)
	assert.Len(t, svc.Requests(), 1)
}

func TestServer_HandleHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})
	rec, _ := do(t, srv.Handler(), http.MethodGet, "/healthz", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, 0, srv.Sessions().Len())
}

func TestServer_UnknownPath(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &testutil.StubService{})
	rec, _ := do(t, srv.Handler(), http.MethodGet, "/nope", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
