package translator

import (
	"context"
	"errors"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/valpere/rapidtran/internal/catalog"
)

// GoogleService uses Cloud Translation (v2). Credentials default to the
// environment's application default credentials.
type GoogleService struct {
	credentials string
}

func NewGoogleService(credentials string) *GoogleService {
	return &GoogleService{credentials: credentials}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetTag, err := language.Parse(req.TargetLang)
	if err != nil {
		result.Error = fmt.Sprintf("invalid target language: %v", err)
		return result, fmt.Errorf("invalid target language: %w", err)
	}

	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = catalog.SourceLanguage
	}
	sourceTag, err := language.Parse(sourceLang)
	if err != nil {
		result.Error = fmt.Sprintf("invalid source language: %v", err)
		return result, fmt.Errorf("invalid source language: %w", err)
	}

	var opts []option.ClientOption
	if s.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(s.credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	translations, err := client.Translate(ctx, []string{req.Text}, targetTag, &translate.Options{
		Source: sourceTag,
		Format: translate.Text,
	})
	if err != nil {
		err = googleError(err)
		result.Error = err.Error()
		return result, err
	}

	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("no translation returned")
	}

	result.TranslatedText = translations[0].Text

	return result, nil
}

// googleError maps googleapi errors onto APIError so callers see the same
// "API error <status>: <message>" shape for every backend.
func googleError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{StatusCode: gerr.Code, Message: gerr.Message}
	}
	return fmt.Errorf("translation failed: %w", err)
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GoogleService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return catalog.Codes(), nil
}
