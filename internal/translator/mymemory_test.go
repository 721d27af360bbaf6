package translator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestMyMemory(server *httptest.Server, email string) *MyMemoryService {
	svc := NewMyMemoryService(email)
	svc.baseURL = server.URL
	svc.client = server.Client()
	return svc
}

func TestMyMemoryService_Translate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get" {
			t.Errorf("expected /get, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "Have a great day!" {
			t.Errorf("unexpected q %q", q.Get("q"))
		}
		if q.Get("langpair") != "en|es" {
			t.Errorf("unexpected langpair %q", q.Get("langpair"))
		}
		if q.Get("de") != "me@example.com" {
			t.Errorf("unexpected de %q", q.Get("de"))
		}
		w.Write([]byte(`{"responseData":{"translatedText":"¡Que tengas un gran día!","match":0.98},"responseStatus":200}`))
	}))
	defer server.Close()

	result, err := newTestMyMemory(server, "me@example.com").Translate(context.Background(), TranslateRequest{
		Text:       "Have a great day!",
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "¡Que tengas un gran día!" {
		t.Errorf("unexpected translation %q", result.TranslatedText)
	}
	if result.Metadata["match"] != "0.98" {
		t.Errorf("expected match metadata, got %v", result.Metadata)
	}
}

func TestMyMemoryService_Translate_QuotaError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":""},"responseStatus":"403","responseDetails":"DAILY QUOTA EXCEEDED"}`))
	}))
	defer server.Close()

	result, err := newTestMyMemory(server, "").Translate(context.Background(), TranslateRequest{Text: "Hi", TargetLang: "de"})
	if err == nil {
		t.Fatal("expected error for quota response")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 403 {
		t.Errorf("expected APIError 403, got %v", err)
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestMyMemoryService_Translate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestMyMemory(server, "").Translate(context.Background(), TranslateRequest{Text: "Hi", TargetLang: "de"})
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if err.Error() != "API error 503: empty response body" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestMyMemoryService_IsAvailable(t *testing.T) {
	svc := NewMyMemoryService("test@example.com")

	if err := svc.IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMyMemoryService_Name(t *testing.T) {
	svc := NewMyMemoryService("")

	if svc.Name() != "mymemory" {
		t.Errorf("expected 'mymemory', got %q", svc.Name())
	}
}

func TestMyMemoryService_Translate_ResponseTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"`))
		w.Write([]byte(strings.Repeat("a", maxResponseSize)))
		w.Write([]byte(`"}}`))
	}))
	defer server.Close()

	_, err := newTestMyMemory(server, "").Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "fr"})
	if !errors.Is(err, ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got %v", err)
	}
}
