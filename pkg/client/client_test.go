package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hira-Iftikhar-123/SociaLite/pkg/client"
	"github.com/stretchr/testify/require"
)

func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"issued-token","user":{"username":"alice"}}`))
	})

	mux.HandleFunc("PUT /api/posts/like/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["user-v"]`))
	})

	mux.HandleFunc("GET /api/users/search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "bo", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"username":"bob"}]`))
	})

	mux.HandleFunc("DELETE /api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Post not found"})
	})

	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	t.Parallel()

	ts := fakeServer(t)
	defer ts.Close()

	c := client.New(ts.URL)
	defer c.Close()

	auth, err := c.Login(t.Context(), "alice@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "issued-token", auth.Token)
	require.Equal(t, "alice", auth.User.Username)

	// The installed token authenticates later calls.
	likes, err := c.ToggleLike(t.Context(), "abc123")
	require.NoError(t, err)
	require.Equal(t, []string{"user-v"}, likes)

	users, err := c.SearchUsers(t.Context(), "bo")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "bob", users[0].Username)

	err = c.DeletePost(t.Context(), "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
}
