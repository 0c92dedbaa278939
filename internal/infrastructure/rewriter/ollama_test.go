package rewriter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpage/backend/internal/domain"
)

func testItems() []domain.DraftAnswer {
	return []domain.DraftAnswer{
		{Question: "How do I use this product?", Category: "Usage", Answer: "Apply 2-3 drops in the morning."},
		{Question: "What is the price?", Category: "Purchase", Answer: "The price is 699."},
	}
}

func testProduct() domain.ProductContext {
	return domain.ProductContext{Name: "GlowBoost Vitamin C Serum", Concentration: "10% Vitamin C", Price: 699}
}

func TestRewrite_Success(t *testing.T) {
	var received generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		json.NewEncoder(w).Encode(generateResponse{Response: "A reworded answer."})
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "llama3:8b", 5*time.Second, 600)
	items := testItems()

	results, err := client.Rewrite(context.Background(), items, testProduct())

	require.NoError(t, err)
	require.Len(t, results, len(items))
	for i, result := range results {
		assert.Equal(t, items[i].Question, result.Question)
		assert.Equal(t, items[i].Category, result.Category)
		assert.Equal(t, "A reworded answer.", result.Answer)
	}

	assert.Equal(t, "llama3:8b", received.Model)
	assert.False(t, received.Stream)
	assert.Contains(t, received.Prompt, "WITHOUT adding any new facts")
	assert.Contains(t, received.Prompt, "The price is 699.")
	assert.Contains(t, received.Prompt, "GlowBoost Vitamin C Serum")
}

func TestRewrite_AlternateResponseKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"output key", `{"output": "Reworded via output."}`},
		{"text key", `{"text": "Reworded via text."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewOllamaClient(server.URL, "llama3:8b", 5*time.Second, 600)

			results, err := client.Rewrite(context.Background(), testItems()[:1], testProduct())

			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.NotEmpty(t, results[0].Answer)
		})
	}
}

func TestRewrite_RetriesTransientFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(generateResponse{Response: "Recovered answer."})
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "llama3:8b", 5*time.Second, 600)

	results, err := client.Rewrite(context.Background(), testItems()[:1], testProduct())

	require.NoError(t, err)
	assert.Equal(t, "Recovered answer.", results[0].Answer)
	assert.Equal(t, 2, attempts)
}

func TestRewrite_ServerDownFailsBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately unreachable

	client := NewOllamaClient(server.URL, "llama3:8b", time.Second, 600)

	results, err := client.Rewrite(context.Background(), testItems(), testProduct())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRewriterUnavailable)
	assert.Nil(t, results)
}

func TestRewrite_EmptyResponseIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": "   "}`))
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "llama3:8b", 5*time.Second, 600)

	_, err := client.Rewrite(context.Background(), testItems()[:1], testProduct())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRewriterUnavailable)
}

func TestRewrite_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Response: "Too late."})
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "llama3:8b", 5*time.Second, 600)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Rewrite(ctx, testItems()[:1], testProduct())

	require.Error(t, err)
}

func TestNewOllamaClient_Defaults(t *testing.T) {
	client := NewOllamaClient("http://localhost:11434/", "llama3:8b", 0, 0)

	assert.Equal(t, "http://localhost:11434", client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.NotNil(t, client.rateLimiter)
}

func TestIdentity_ReturnsDraftsUnchanged(t *testing.T) {
	items := testItems()

	results, err := Identity{}.Rewrite(context.Background(), items, testProduct())

	require.NoError(t, err)
	assert.Equal(t, items, results)
}

func TestNew_SelectsImplementation(t *testing.T) {
	t.Run("disabled yields identity", func(t *testing.T) {
		rw := New(Config{Enabled: false})
		assert.IsType(t, Identity{}, rw)
	})

	t.Run("enabled yields ollama client", func(t *testing.T) {
		rw := New(Config{
			Enabled:           true,
			BaseURL:           "http://localhost:11434",
			Model:             "llama3:8b",
			Timeout:           10 * time.Second,
			RequestsPerMinute: 60,
		})
		assert.IsType(t, &OllamaClient{}, rw)
	})
}
