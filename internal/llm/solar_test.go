package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolarClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "solar-pro", req.Model)
		assert.Zero(t, req.Temperature)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "review this", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"looks good"}}]}`))
	}))
	defer srv.Close()

	c := NewSolarClient(srv.URL+"/v1/", "secret", "solar-pro", srv.Client())
	out, err := c.Complete(context.Background(), "review this")
	require.NoError(t, err)
	assert.Equal(t, "looks good", out)
}

func TestSolarClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errMsg string
	}{
		{name: "HTTP error", status: http.StatusUnauthorized, body: `{"error":"bad key"}`, errMsg: "status 401"},
		{name: "No choices", status: http.StatusOK, body: `{"choices":[]}`, errMsg: "no choices"},
		{name: "Empty content", status: http.StatusOK, body: `{"choices":[{"message":{"content":""}}]}`, errMsg: "empty text content"},
		{name: "Invalid JSON", status: http.StatusOK, body: `not json`, errMsg: "parsing response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewSolarClient(srv.URL, "k", "m", nil)
			_, err := c.Complete(context.Background(), "p")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
