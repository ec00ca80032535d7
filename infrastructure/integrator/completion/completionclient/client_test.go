package completionclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	completiondomain "github.com/vfg2006/business-dashboard-api/infrastructure/integrator/completion/domain"
	"github.com/vfg2006/business-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestClient(t *testing.T, handler http.HandlerFunc) *CompletionClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.Config{
		OpenAI: config.OpenAI{
			APIKey:  "test-key",
			BaseURL: server.URL + "/v1",
			Timeout: 5 * time.Second,
		},
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCompletionClient_CreateChatCompletion(t *testing.T) {
	ctx := context.Background()
	request := completiondomain.ChatRequest{
		Model:       "gpt-3.5-turbo",
		Messages:    []completiondomain.Message{{Role: completiondomain.RoleUser, Content: "oi"}},
		MaxTokens:   500,
		Temperature: 0.7,
	}

	t.Run("resposta com sucesso", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body completiondomain.ChatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, request, body)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"cmpl-1","model":"gpt-3.5-turbo","choices":[{"index":0,"message":{"role":"assistant","content":"Vendas em alta."},"finish_reason":"stop"}]}`))
		})

		resp, err := client.CreateChatCompletion(ctx, request)
		require.NoError(t, err)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, "Vendas em alta.", resp.Choices[0].Message.Content)
	})

	t.Run("erro do provedor", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota"}}`))
		})

		_, err := client.CreateChatCompletion(ctx, request)
		require.Error(t, err)

		var providerErr *ProviderError
		require.True(t, errors.As(err, &providerErr))
		assert.Equal(t, http.StatusTooManyRequests, providerErr.StatusCode)
		assert.True(t, providerErr.Response.IsQuotaExceeded())
		assert.Contains(t, providerErr.Error(), "quota")
	})
}
