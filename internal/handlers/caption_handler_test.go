package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hira-Iftikhar-123/SociaLite/internal/handlers"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/openai"
	"github.com/stretchr/testify/require"
)

func TestGenerateCaption(t *testing.T) {
	t.Parallel()

	t.Run("returns the trimmed completion", func(t *testing.T) {
		t.Parallel()

		var gotPrompt string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Model    string `json:"model"`
				Messages []struct {
					Content string `json:"content"`
				} `json:"messages"`
				MaxTokens int `json:"max_tokens"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "gpt-3.5-turbo", req.Model)
			require.Equal(t, 50, req.MaxTokens)
			require.Len(t, req.Messages, 1)
			gotPrompt = req.Messages[0].Content

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Chasing golden hour.  "}}]}`))
		}))
		defer ts.Close()

		aiClient := openai.NewClientWithBaseURL("test-key", ts.URL)
		defer aiClient.Close()

		h := handlers.NewCaptionHandler(aiClient)
		c, rec := newTestContext(http.MethodPost, "/api/ai/caption", `{"mood":"nostalgic"}`, "caller")

		require.NoError(t, h.GenerateCaption(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var out map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Equal(t, "Chasing golden hour.", out["caption"])
		require.Contains(t, gotPrompt, `"nostalgic"`)
	})

	t.Run("missing mood is a bad request", func(t *testing.T) {
		t.Parallel()

		h := handlers.NewCaptionHandler(openai.NewClientWithBaseURL("test-key", "http://127.0.0.1:0"))
		c, _ := newTestContext(http.MethodPost, "/api/ai/caption", `{}`, "caller")

		err := h.GenerateCaption(c)
		require.Equal(t, http.StatusBadRequest, httpStatus(err))
	})

	t.Run("upstream failure maps to a generic error", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
		}))
		defer ts.Close()

		aiClient := openai.NewClientWithBaseURL("test-key", ts.URL)
		defer aiClient.Close()

		h := handlers.NewCaptionHandler(aiClient)
		c, _ := newTestContext(http.MethodPost, "/api/ai/caption", `{"mood":"happy"}`, "caller")

		err := h.GenerateCaption(c)
		require.Equal(t, http.StatusInternalServerError, httpStatus(err))
		require.NotContains(t, err.Error(), "rate limited")
	})
}
