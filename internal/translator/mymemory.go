package translator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/valpere/rapidtran/internal/catalog"
)

const myMemoryBaseURL = "https://api.mymemory.translated.net"

// MyMemoryService uses the free MyMemory API (5000 chars/day anonymously,
// more with a registered email).
type MyMemoryService struct {
	email   string
	baseURL string
	client  *http.Client
}

func NewMyMemoryService(email string) *MyMemoryService {
	return &MyMemoryService{
		email:   email,
		baseURL: myMemoryBaseURL,
		client:  &http.Client{},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = catalog.SourceLanguage
	}

	q := url.Values{}
	q.Set("q", req.Text)
	q.Set("langpair", fmt.Sprintf("%s|%s", sourceLang, req.TargetLang))
	if s.email != "" {
		q.Set("de", s.email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/get?"+q.Encode(), nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, fmt.Errorf("failed to create request: %w", err)
	}

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

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: MessageFromBody(body)}
		result.Error = apiErr.Error()
		return result, apiErr
	}

	// responseStatus arrives as a number on success and sometimes as a
	// string ("403") on quota errors.
	status := gjson.GetBytes(body, "responseStatus").Int()
	if status != http.StatusOK {
		apiErr := &APIError{StatusCode: int(status), Message: gjson.GetBytes(body, "responseDetails").String()}
		result.Error = apiErr.Error()
		return result, apiErr
	}

	result.TranslatedText = gjson.GetBytes(body, "responseData.translatedText").String()
	if match := gjson.GetBytes(body, "responseData.match"); match.Exists() {
		result.Metadata = map[string]string{"match": match.String()}
	}

	return result, nil
}

func (s *MyMemoryService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *MyMemoryService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return catalog.Codes(), nil
}
