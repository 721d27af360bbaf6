package translator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/valpere/rapidtran/internal/catalog"
)

// PlaceholderText stands in for the translation when a successful response
// carries no data.translatedText.
const PlaceholderText = "No translatedText in response"

const (
	successStatus   = "success"
	maxResponseSize = 1 << 20
)

// RapidAPIService calls a RapidAPI-hosted text translation endpoint that
// takes a form-encoded body and answers with
// {"status": "success", "data": {"translatedText": "..."}}.
type RapidAPIService struct {
	endpoint string
	apiKey   string
	apiHost  string
	client   *http.Client
	logger   *zap.Logger
}

// NewRapidAPIService builds the service. Missing endpoint, key or host are
// not rejected here; requests are sent anyway and fail at transport or
// authorization level.
func NewRapidAPIService(endpoint, apiKey, apiHost string, logger *zap.Logger) *RapidAPIService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RapidAPIService{
		endpoint: endpoint,
		apiKey:   apiKey,
		apiHost:  apiHost,
		client:   &http.Client{},
		logger:   logger,
	}
}

func (s *RapidAPIService) Name() string {
	return "rapidapi"
}

func (s *RapidAPIService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = catalog.SourceLanguage
	}

	form := url.Values{}
	form.Set("source_language", sourceLang)
	form.Set("target_language", req.TargetLang)
	form.Set("text", req.Text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("content-type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("X-RapidAPI-Key", s.apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", s.apiHost)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read response: %v", err)
		return result, fmt.Errorf("failed to read response: %w", err)
	}

	s.logger.Debug("rapidapi response",
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	if !isSuccess(resp.StatusCode, body) {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: MessageFromBody(body)}
		result.Error = apiErr.Error()
		return result, apiErr
	}

	translated := gjson.GetBytes(body, "data.translatedText").String()
	if translated == "" {
		s.logger.Warn("success response without data.translatedText")
		translated = PlaceholderText
		result.Metadata = map[string]string{"placeholder": "true"}
	}
	result.TranslatedText = translated

	return result, nil
}

// isSuccess requires both a 2xx status and status == "success" in the body.
func isSuccess(statusCode int, body []byte) bool {
	if statusCode < 200 || statusCode > 299 {
		return false
	}
	st := gjson.GetBytes(body, "status")
	return st.Type == gjson.String && st.Str == successStatus
}

func (s *RapidAPIService) IsAvailable(ctx context.Context) error {
	switch {
	case s.endpoint == "":
		return fmt.Errorf("RapidAPI endpoint not configured")
	case s.apiKey == "":
		return fmt.Errorf("RapidAPI key not configured")
	case s.apiHost == "":
		return fmt.Errorf("RapidAPI host not configured")
	}
	return nil
}

func (s *RapidAPIService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return catalog.Codes(), nil
}
