// Package testutil provides test doubles shared by package tests.
package testutil

import (
	"context"
	"sync"

	"github.com/valpere/rapidtran/internal/translator"
)

// StubService is a translator.TranslationService driven by TranslateFunc.
// Without TranslateFunc it echoes the request text prefixed with the target
// language code.
type StubService struct {
	TranslateFunc func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error)

	mu       sync.Mutex
	requests []translator.TranslateRequest
}

func (s *StubService) Name() string { return "stub" }

func (s *StubService) Translate(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.TranslateFunc != nil {
		return s.TranslateFunc(ctx, req)
	}
	return &translator.ServiceResult{ServiceName: s.Name(), TranslatedText: "[" + req.TargetLang + "] " + req.Text}, nil
}

func (s *StubService) IsAvailable(ctx context.Context) error { return nil }

func (s *StubService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"hi", "fr"}, nil
}

// Requests returns the requests received so far.
func (s *StubService) Requests() []translator.TranslateRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]translator.TranslateRequest(nil), s.requests...)
}

// Returning builds a TranslateFunc that always answers text.
func Returning(text string) func(context.Context, translator.TranslateRequest) (*translator.ServiceResult, error) {
	return func(context.Context, translator.TranslateRequest) (*translator.ServiceResult, error) {
		return &translator.ServiceResult{ServiceName: "stub", TranslatedText: text}, nil
	}
}

// Failing builds a TranslateFunc that always fails with err.
func Failing(err error) func(context.Context, translator.TranslateRequest) (*translator.ServiceResult, error) {
	return func(context.Context, translator.TranslateRequest) (*translator.ServiceResult, error) {
		return &translator.ServiceResult{ServiceName: "stub", Error: err.Error()}, err
	}
}
