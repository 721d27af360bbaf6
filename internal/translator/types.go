package translator

import (
	"context"
	"time"
)

// ServiceConfig carries the settings the backends are built from.
type ServiceConfig struct {
	Endpoint    string
	APIKey      string
	APIHost     string
	Credentials string
	Email       string
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Metadata       map[string]string `json:"metadata"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

type TranslationService interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
	SupportedLanguages(ctx context.Context) ([]string, error)
}
