package translator

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestGoogleService_Translate_InvalidTarget(t *testing.T) {
	svc := NewGoogleService("")

	result, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "Hello",
		TargetLang: "not a language",
	})

	if err == nil {
		t.Error("expected error for invalid target language")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestGoogleError_MapsAPIError(t *testing.T) {
	err := googleError(&googleapi.Error{Code: 403, Message: "billing disabled"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if err.Error() != "API error 403: billing disabled" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestGoogleError_WrapsOther(t *testing.T) {
	base := errors.New("dial tcp: connection refused")
	err := googleError(base)

	if !errors.Is(err, base) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestGoogleService_Name(t *testing.T) {
	if NewGoogleService("").Name() != "google" {
		t.Error("expected 'google'")
	}
}
