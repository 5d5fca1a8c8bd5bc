package mymemory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"translation-relay/pkg/types"
)

const (
	// Endpoint is the MyMemory translation API.
	Endpoint = "https://api.mymemory.translated.net/get"

	// MaxQueryBytes is the largest q parameter the service accepts.
	MaxQueryBytes = 500

	unknownErrorMessage = "Unknown translation error"
)

// ServiceError reports a failed call to the translation service: either a
// non-200 status, or a 200 whose body had no translated text.
type ServiceError struct {
	StatusCode int
	Detail     string
}

func (e *ServiceError) Error() string {
	if e.StatusCode != http.StatusOK {
		return fmt.Sprintf("Translation service error: %d", e.StatusCode)
	}
	if e.Detail != "" {
		return e.Detail
	}
	return unknownErrorMessage
}

type getResponse struct {
	ResponseData *struct {
		TranslatedText *string `json:"translatedText"`
	} `json:"responseData"`
	ResponseDetails any `json:"responseDetails"`
}

type Client struct {
	httpClient   *http.Client
	endpoint     string
	apiKey       string
	contactEmail string
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithEndpoint points the client at another server speaking the same API.
// Only used by tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

func NewMyMemoryClient(cfg types.MyMemoryConfig, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{},
		endpoint:     Endpoint,
		apiKey:       cfg.APIKey,
		contactEmail: cfg.ContactEmail,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Translate sends one piece of text to the service and returns its
// translation. It makes exactly one attempt.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", sourceLang+"|"+targetLang)
	params.Set("key", c.apiKey)
	if c.contactEmail != "" {
		params.Set("de", c.contactEmail)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ServiceError{StatusCode: resp.StatusCode}
	}

	var body getResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}

	if body.ResponseData == nil || body.ResponseData.TranslatedText == nil {
		return "", &ServiceError{StatusCode: resp.StatusCode, Detail: detailString(body.ResponseDetails)}
	}
	return *body.ResponseData.TranslatedText, nil
}

func detailString(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return d
	default:
		return fmt.Sprint(d)
	}
}

// ExceedsQueryLimit reports whether text, once URL-encoded as the q
// parameter, is larger than the service accepts.
func ExceedsQueryLimit(text string) bool {
	return len(url.QueryEscape(text)) > MaxQueryBytes
}
