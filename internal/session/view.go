// Package session implements the translator view: the input, the single
// outbound translation request, and the resulting translation, error and
// history that the web page, the REPL and the CLI render.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/rapidtran/internal"
	"github.com/valpere/rapidtran/internal/catalog"
	"github.com/valpere/rapidtran/internal/history"
	"github.com/valpere/rapidtran/internal/translator"
)

// User-facing messages.
const (
	MsgEmptyInput     = "Please type something to translate."
	MsgGenericFailure = "Something went wrong while translating."
	MsgCopied         = "Translated text copied to clipboard!"
	MsgCopyFailed     = "Failed to copy text."
)

var (
	// ErrEmptyInput is returned when the source text is blank.
	ErrEmptyInput = errors.New("empty input")
	// ErrBusy is returned when a dispatch is already in flight.
	ErrBusy = errors.New("translation already in progress")
	// ErrNoClipboard is returned by CopyResult when no clipboard is wired.
	ErrNoClipboard = errors.New("no clipboard configured")
)

// Clipboard receives copied translations.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

// LanguageChecker reports whether text looks like it is written in lang.
type LanguageChecker interface {
	IsValid(text, lang string) (bool, error)
}

// Options configures a View. Zero values are usable.
type Options struct {
	// Timeout bounds one dispatch. Zero means no timeout.
	Timeout   time.Duration
	NewID     history.IDGenerator
	Now       func() time.Time
	Checker   LanguageChecker
	Clipboard Clipboard
	Notifier  Notifier
	Logger    *zap.Logger
}

// View owns one user's translator state. Methods are safe for concurrent
// use; the lock is never held across the network call, so Snapshot can be
// read while a dispatch is in flight.
type View struct {
	mu      sync.Mutex
	state   State
	service translator.TranslationService

	timeout   time.Duration
	newID     history.IDGenerator
	now       func() time.Time
	checker   LanguageChecker
	clipboard Clipboard
	notifier  Notifier
	logger    *zap.Logger
}

func NewView(service translator.TranslationService, opts Options) *View {
	v := &View{
		state:     NewState(),
		service:   service,
		timeout:   opts.Timeout,
		newID:     opts.NewID,
		now:       opts.Now,
		checker:   opts.Checker,
		clipboard: opts.Clipboard,
		notifier:  opts.Notifier,
		logger:    opts.Logger,
	}
	if v.newID == nil {
		v.newID = history.NewUUID
	}
	if v.now == nil {
		v.now = time.Now
	}
	if v.notifier == nil {
		v.notifier = NotifierFunc(func(string) {})
	}
	if v.logger == nil {
		v.logger = zap.NewNop()
	}
	return v
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.clone()
}

func (v *View) update(fn func(State) State) {
	v.mu.Lock()
	v.state = fn(v.state)
	v.mu.Unlock()
}

// SetSourceText replaces the source text. No length limit is applied.
func (v *View) SetSourceText(text string) {
	v.update(func(s State) State { return s.withSourceText(text) })
}

// SetTargetLanguage replaces the selected target language. Callers taking
// free-form input validate the code with catalog.Lookup first.
func (v *View) SetTargetLanguage(code string) {
	v.update(func(s State) State { return s.withTargetLang(code) })
}

// ApplySuggestion overwrites the source text with an example sentence.
func (v *View) ApplySuggestion(sentence string) {
	v.SetSourceText(sentence)
}

// CharCount is the length of the current source text.
func (v *View) CharCount() int {
	return v.Snapshot().CharCount()
}

// Translate dispatches the current source text. Blank input fails locally
// with ErrEmptyInput and never reaches the network. Otherwise the outcome is
// recorded in the state: a translation plus a new history entry on success,
// an error message with an empty translation on failure. The returned error
// mirrors the failure; its text is the error message shown to the user.
func (v *View) Translate(ctx context.Context) error {
	v.mu.Lock()
	if v.state.Loading {
		v.mu.Unlock()
		return ErrBusy
	}
	if strings.TrimSpace(v.state.SourceText) == "" {
		v.state = v.state.reject(MsgEmptyInput)
		v.mu.Unlock()
		return ErrEmptyInput
	}
	v.state = v.state.begin()
	req := translator.TranslateRequest{
		Text:       v.state.SourceText,
		SourceLang: catalog.SourceLanguage,
		TargetLang: v.state.TargetLang,
	}
	v.mu.Unlock()

	defer v.update(State.idle)

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	v.check("source", req.Text, req.SourceLang)

	log := v.logger.With(
		zap.String("service", v.service.Name()),
		zap.String("target", req.TargetLang),
		zap.Int("chars", len(req.Text)))

	res, err := v.service.Translate(ctx, req)
	if err == nil && res != nil && res.Error != "" {
		err = errors.New(res.Error)
	}
	if err == nil && res == nil {
		err = fmt.Errorf("%s returned no result", v.service.Name())
	}
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = MsgGenericFailure
		}
		log.Warn("translation failed", zap.Error(err))
		v.update(func(s State) State { return s.fail(msg) })
		return err
	}

	text := res.TranslatedText
	if text == "" {
		text = translator.PlaceholderText
	}

	entry := internal.HistoryEntry{
		ID:        v.newID(),
		Source:    req.Text,
		Target:    text,
		LangCode:  req.TargetLang,
		CreatedAt: v.now(),
	}
	v.update(func(s State) State { return s.succeed(entry) })

	log.Info("translation succeeded",
		zap.String("id", entry.ID),
		zap.Duration("latency", res.Latency))

	if text != translator.PlaceholderText {
		v.check("translation", text, req.TargetLang)
	}
	return nil
}

// check logs a warning when text does not look like lang. It never fails
// the dispatch.
func (v *View) check(what, text, lang string) {
	if v.checker == nil {
		return
	}
	if ok, err := v.checker.IsValid(text, lang); !ok {
		v.logger.Warn("unexpected language",
			zap.String("text", what),
			zap.String("expected", lang),
			zap.Error(err))
	}
}

// CopyResult writes the current translation to the clipboard and notifies
// the user of the outcome. Without a translation it does nothing.
func (v *View) CopyResult(ctx context.Context) error {
	text := v.Snapshot().TranslatedText
	if text == "" {
		return nil
	}

	if v.clipboard == nil {
		v.logger.Error("clipboard write failed", zap.Error(ErrNoClipboard))
		v.notifier.Notify(MsgCopyFailed)
		return ErrNoClipboard
	}

	if err := v.clipboard.WriteText(ctx, text); err != nil {
		v.logger.Error("clipboard write failed", zap.Error(err))
		v.notifier.Notify(MsgCopyFailed)
		return fmt.Errorf("copy result: %w", err)
	}

	v.notifier.Notify(MsgCopied)
	return nil
}
