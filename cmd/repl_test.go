package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/valpere/rapidtran/internal/clipboard"
	"github.com/valpere/rapidtran/internal/history"
	"github.com/valpere/rapidtran/internal/session"
	"github.com/valpere/rapidtran/internal/testutil"
	"github.com/valpere/rapidtran/internal/translator"
)

func runScript(t *testing.T, svc translator.TranslationService, clip session.Clipboard, script string) (string, *session.View) {
	t.Helper()

	var out bytes.Buffer
	view := session.NewView(svc, session.Options{
		NewID:     history.NewCounter("r"),
		Clipboard: clip,
		Notifier:  printNotifier(&out),
	})

	if err := runREPL(context.Background(), view, strings.NewReader(script), &out); err != nil {
		t.Fatalf("runREPL() error = %v", err)
	}
	return out.String(), view
}

func TestREPL_TranslateLines(t *testing.T) {
	svc := &testutil.StubService{}
	out, view := runScript(t, svc, nil, "Hello\n:lang fr\nGood night\n")

	if !strings.Contains(out, "[hi] Hello") {
		t.Errorf("missing Hindi translation in output:\n%s", out)
	}
	if !strings.Contains(out, "target language: French") {
		t.Errorf("missing language change in output:\n%s", out)
	}
	if !strings.Contains(out, "[fr] Good night") {
		t.Errorf("missing French translation in output:\n%s", out)
	}

	s := view.Snapshot()
	if len(s.History) != 2 || s.History[0].LangCode != "fr" {
		t.Errorf("unexpected history %+v", s.History)
	}
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	svc := &testutil.StubService{}
	runScript(t, svc, nil, "\n   \n")

	if n := len(svc.Requests()); n != 0 {
		t.Errorf("expected no requests, got %d", n)
	}
}

func TestREPL_SuggestAndTranslate(t *testing.T) {
	svc := &testutil.StubService{}
	out, view := runScript(t, svc, nil, ":suggest 2\n:translate\n")

	if !strings.Contains(out, "text: Thank you for your help.") {
		t.Errorf("suggestion not echoed:\n%s", out)
	}
	if got := view.Snapshot().History[0].Source; got != "Thank you for your help." {
		t.Errorf("history source = %q", got)
	}
}

func TestREPL_Errors(t *testing.T) {
	svc := &testutil.StubService{TranslateFunc: testutil.Failing(&translator.APIError{StatusCode: 429, Message: "rate limited"})}
	out, _ := runScript(t, svc, nil, ":lang xx\n:suggest 9\n:bogus\n:translate\nHello\n")

	for _, want := range []string{
		`error: unsupported language "xx"`,
		"error: no suggestion 9 (1-5)",
		"error: unknown command :bogus",
		"error: " + session.MsgEmptyInput,
		"error: API error 429: rate limited",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestREPL_CopyAndHistory(t *testing.T) {
	clip := &clipboard.Memory{}
	svc := &testutil.StubService{TranslateFunc: testutil.Returning("नमस्ते")}
	out, _ := runScript(t, svc, clip, ":copy\n:history\nHello\n:copy\n:history\n")

	if !strings.Contains(out, "error: nothing to copy") {
		t.Errorf("copy before translation should fail:\n%s", out)
	}
	if !strings.Contains(out, "no translations yet") {
		t.Errorf("empty history not reported:\n%s", out)
	}
	if !strings.Contains(out, session.MsgCopied) {
		t.Errorf("copy notice missing:\n%s", out)
	}
	if clip.Text() != "नमस्ते" {
		t.Errorf("clipboard = %q", clip.Text())
	}
	if !strings.Contains(out, "EN → Hindi: Hello => नमस्ते") {
		t.Errorf("history line missing:\n%s", out)
	}
}

func TestREPL_Quit(t *testing.T) {
	svc := &testutil.StubService{}
	runScript(t, svc, nil, ":quit\nHello\n")

	if n := len(svc.Requests()); n != 0 {
		t.Errorf("expected no requests after :quit, got %d", n)
	}
}

func TestREPL_Languages(t *testing.T) {
	out, _ := runScript(t, &testutil.StubService{}, nil, ":languages\n")

	if !strings.Contains(out, "* hi  Hindi") {
		t.Errorf("current language not marked:\n%s", out)
	}
	if !strings.Contains(out, "  de  German") {
		t.Errorf("German missing:\n%s", out)
	}
}
