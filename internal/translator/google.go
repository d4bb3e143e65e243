// Package translator talks to the public Google web translation endpoint.
package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 1 << 20

// Google is a client for the "gtx" web translation endpoint
type Google struct {
	baseURL string
	client  *http.Client
}

// NewGoogle creates a client for baseURL. A nil client uses http.DefaultClient.
func NewGoogle(baseURL string, client *http.Client) *Google {
	if client == nil {
		client = http.DefaultClient
	}
	return &Google{
		baseURL: baseURL,
		client:  client,
	}
}

// Translate translates text from source ("auto" to detect) into target
func (g *Google) Translate(ctx context.Context, source, target, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text")
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return parseResponse(body)
}

// parseResponse extracts the translation from the nested array payload:
// [[["Bonjour","Hello",null,null,10], ...], null, "en", ...]
func parseResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var sentences [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &sentences); err != nil {
		return "", fmt.Errorf("failed to decode sentences: %w", err)
	}

	var b strings.Builder
	for _, sentence := range sentences {
		if len(sentence) == 0 {
			continue
		}
		// Transliteration rows carry null in the first slot
		var part *string
		if err := json.Unmarshal(sentence[0], &part); err != nil || part == nil {
			continue
		}
		b.WriteString(*part)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no translation in response")
	}
	return b.String(), nil
}
