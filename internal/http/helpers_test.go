package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/zanspiler/forums/internal/forum"
	"github.com/zanspiler/forums/internal/forum/forumtest"
	api "github.com/zanspiler/forums/internal/http"
	"github.com/zanspiler/forums/internal/queue"
)

type testEnv struct {
	Store  *forumtest.MemStore
	Svc    *forum.Service
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := forumtest.NewMemStore()
	svc := forum.NewService(store)
	h := api.NewHandler(svc, "test-secret", 15, queue.NewNoop())
	r := api.NewRouter(h, nil) // no limiter in tests

	return &testEnv{Store: store, Svc: svc, Router: r}
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// signup registers a user and returns a usable access token.
func (e *testEnv) signup(t *testing.T, username string) string {
	t.Helper()
	w := e.do("POST", "/api/auth/register",
		`{"username":"`+username+`","email":"`+username+`@example.com","password":"StrongP@ss1"}`, "")
	require.Equal(t, 201, w.Code, w.Body.String())

	w = e.do("POST", "/api/auth/login",
		`{"username":"`+username+`","password":"StrongP@ss1"}`, "")
	require.Equal(t, 200, w.Code, w.Body.String())

	var lr struct {
		Access string `json:"access"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lr))
	require.NotEmpty(t, lr.Access)
	return lr.Access
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
