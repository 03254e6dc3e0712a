package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diarioalimentar/backend/config"
)

// outboundTimeout bounds every call to an external provider so a stalled
// remote cannot hold a request forever.
const outboundTimeout = 10 * time.Second

// TranslationService wraps the external text-translation provider. One call,
// no retries; on any failure the returned text is empty and the error carries
// ErrTranslationFailed.
type TranslationService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewTranslationService creates a new TranslationService instance
func NewTranslationService(cfg *config.Config) *TranslationService {
	return &TranslationService{
		apiKey: cfg.TranslateAPIKey,
		apiURL: cfg.TranslateAPIURL,
		client: &http.Client{Timeout: outboundTimeout},
	}
}

// Translate converts text from the source locale to the target locale.
func (s *TranslationService) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text", ErrTranslationFailed)
	}

	form := url.Values{}
	form.Set("q", text)
	form.Set("source", source)
	form.Set("target", target)
	form.Set("format", "text")

	endpoint := s.apiURL + "?key=" + url.QueryEscape(s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("translation request %s -> %s failed: %v", source, target, err)
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("translation provider returned status %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("%w: provider returned status %d", ErrTranslationFailed, resp.StatusCode)
	}

	var result struct {
		Data struct {
			Translations []struct {
				TranslatedText string `json:"translatedText"`
			} `json:"translations"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrTranslationFailed, err)
	}
	if len(result.Data.Translations) == 0 {
		return "", fmt.Errorf("%w: provider returned no translations", ErrTranslationFailed)
	}

	return result.Data.Translations[0].TranslatedText, nil
}
