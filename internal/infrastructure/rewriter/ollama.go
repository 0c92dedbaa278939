package rewriter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/glowpage/backend/internal/domain"
)

// OllamaClient paraphrases FAQ answers through a local Ollama server.
// One request is sent per item; any transport failure fails the whole batch
// so the coordinator falls back to drafts for every answer.
type OllamaClient struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewOllamaClient creates an Ollama rewriter client
func NewOllamaClient(baseURL, model string, timeout time.Duration, requestsPerMinute int) *OllamaClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}

	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	return &OllamaClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables per-request logging
func (c *OllamaClient) SetDebug(debug bool) {
	c.debug = debug
}

// generateRequest is the Ollama /api/generate payload
type generateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Stream      bool    `json:"stream"`
	Temperature float64 `json:"temperature"`
}

// generateResponse covers the response shapes Ollama versions have used
type generateResponse struct {
	Response string `json:"response"`
	Output   string `json:"output,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Rewrite paraphrases each item's answer. The returned slice matches the
// input length and order; items the model could not improve carry their
// original text.
func (c *OllamaClient) Rewrite(ctx context.Context, items []domain.DraftAnswer, product domain.ProductContext) ([]domain.DraftAnswer, error) {
	results := make([]domain.DraftAnswer, 0, len(items))

	for _, item := range items {
		candidate, err := c.paraphrase(ctx, item, product)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRewriterUnavailable, err)
		}
		rewritten := item
		rewritten.Answer = candidate
		results = append(results, rewritten)
	}

	return results, nil
}

// paraphrase sends one generate request, retrying transient failures
func (c *OllamaClient) paraphrase(ctx context.Context, item domain.DraftAnswer, product domain.ProductContext) (string, error) {
	payload := generateRequest{
		Model:       c.model,
		Prompt:      buildPrompt(item, product),
		Stream:      false,
		Temperature: 0.2,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := c.baseURL + "/api/generate"

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			if c.debug {
				log.Printf("[OLLAMA] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[OLLAMA] API error (attempt %d) - Status: %d, Body: %s",
					attempt, resp.StatusCode, string(respBody))
			}
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var parsed generateResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}

		text := firstNonEmpty(parsed.Response, parsed.Output, parsed.Text)
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("empty paraphrase response")
		}

		return strings.TrimSpace(text), nil
	}

	return "", lastErr
}

// buildPrompt asks strictly for a reworded answer with no new facts
func buildPrompt(item domain.DraftAnswer, product domain.ProductContext) string {
	var b strings.Builder
	b.WriteString("Paraphrase the following answer for clarity and tone WITHOUT adding any new facts, ")
	b.WriteString("numbers, references, or claims. If you cannot paraphrase without adding facts, return the original answer.\n\n")
	fmt.Fprintf(&b, "Product: %s\n", product.Name)
	if product.Concentration != "" {
		fmt.Fprintf(&b, "Concentration: %s\n", product.Concentration)
	}
	if product.Price > 0 {
		fmt.Fprintf(&b, "Price: %d\n", product.Price)
	}
	fmt.Fprintf(&b, "Question: %s\n", item.Question)
	fmt.Fprintf(&b, "Category: %s\n", item.Category)
	fmt.Fprintf(&b, "Answer: %s\n\n", item.Answer)
	b.WriteString("Return only the paraphrased answer as plain text.")
	return b.String()
}

// exponentialBackoff returns the sleep before the next retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * 500 * time.Millisecond
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
