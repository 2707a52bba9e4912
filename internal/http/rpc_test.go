package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookmarks/internal/database/dbtest"
	"github.com/mrlokans/bookmarks/internal/dto"
	"github.com/mrlokans/bookmarks/internal/rpc"
)

type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *rpc.Error      `json:"error"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.OpenDatabase(t)
	router := NewRouter(RouterConfig{
		Context:     rpc.Context{DB: db.DB, BcryptCost: 4},
		CallTimeout: 5 * time.Second,
		Database:    db,
		Version:     "1.2.3",
		Metrics:     NewMetrics(),
	})
	return &testServer{t: t, router: router}
}

func (s *testServer) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *testServer) query(name string, input any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	target := "/rpc/" + name
	if input != nil {
		raw, err := json.Marshal(input)
		require.NoError(s.t, err)
		target += "?input=" + url.QueryEscape(string(raw))
	}
	return s.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (s *testServer) mutate(name string, input any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	raw, err := json.Marshal(input)
	require.NoError(s.t, err)
	req := httptest.NewRequest(http.MethodPost, "/rpc/"+name, strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func decodeResult[T any](t *testing.T, w *httptest.ResponseRecorder, env envelope) T {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Nil(t, env.Error)
	var out T
	require.NoError(t, json.Unmarshal(env.Result, &out))
	return out
}

func TestRPC_EndToEnd(t *testing.T) {
	s := newTestServer(t)

	w, env := s.mutate("users.createUser", dto.CreateUser{Name: "Ana", Email: "a@x.com"})
	user := decodeResult[dto.User](t, w, env)
	assert.Equal(t, "Ana", user.Name)

	w, env = s.mutate("organization.createOrganization", dto.CreateOrganization{Name: "Acme", UserID: user.ID})
	org := decodeResult[dto.Organization](t, w, env)

	w, env = s.mutate("workspace.createWorkspace", dto.CreateWorkspace{Name: "Eng", OrganizationID: org.ID})
	ws := decodeResult[dto.Workspace](t, w, env)

	w, env = s.mutate("groups.createGroups", dto.CreateGroup{Name: "Links", WorkspaceID: ws.ID})
	group := decodeResult[dto.Group](t, w, env)

	w, env = s.mutate("bookmark.create", dto.CreateBookmark{Name: "Go", URL: "https://go.dev", Tags: "lang", GroupID: &group.ID})
	bm := decodeResult[dto.Bookmark](t, w, env)
	require.NotNil(t, bm.GroupID)
	assert.Equal(t, group.ID, *bm.GroupID)

	w, env = s.query("bookmark.search", "lang")
	found := decodeResult[[]dto.Bookmark](t, w, env)
	require.Len(t, found, 1)
	assert.Equal(t, bm.ID, found[0].ID)

	w, env = s.query("groups.getBelongedGroups", dto.BelongedGroupsQuery{WorkspaceID: ws.ID, OrganizationID: org.ID})
	belonged := decodeResult[[]dto.Group](t, w, env)
	require.Len(t, belonged, 1)
	assert.Equal(t, group.ID, belonged[0].ID)

	w, env = s.query("organization.getOrganizationByUserId", user.ID)
	orgs := decodeResult[[]dto.Organization](t, w, env)
	require.Len(t, orgs, 1)

	// Deleting the user cascades down to the bookmark.
	w, env = s.mutate("users.deleteUser", user.ID)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "null", string(env.Result))

	w, env = s.query("bookmark.getById", bm.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, rpc.CodeNotFound, env.Error.Code)

	w, env = s.query("groups.getGroups", nil)
	assert.Empty(t, decodeResult[[]dto.Group](t, w, env))
}

func TestRPC_UpdateIsPartial(t *testing.T) {
	s := newTestServer(t)

	w, env := s.mutate("users.createUser", dto.CreateUser{Name: "Ana", Email: "a@x.com"})
	user := decodeResult[dto.User](t, w, env)

	w, env = s.mutate("users.updateUser", map[string]any{"id": user.ID, "name": "Ana Maria"})
	updated := decodeResult[dto.User](t, w, env)

	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.True(t, updated.CreatedAt.Equal(user.CreatedAt))
}

func TestRPC_Version(t *testing.T) {
	s := newTestServer(t)

	w, env := s.query("version", nil)
	assert.Equal(t, "1.2.3", decodeResult[string](t, w, env))
}

func TestRPC_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
		wantCode   rpc.ErrorCode
	}{
		{
			name:       "query called with POST",
			req:        httptest.NewRequest(http.MethodPost, "/rpc/users.getUsers", nil),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   rpc.CodeBadRequest,
		},
		{
			name:       "mutation called with GET",
			req:        httptest.NewRequest(http.MethodGet, "/rpc/users.createUser?input="+url.QueryEscape(`{"name":"x","email":"x@x.com"}`), nil),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   rpc.CodeBadRequest,
		},
		{
			name:       "unknown procedure",
			req:        httptest.NewRequest(http.MethodGet, "/rpc/users.nope", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   rpc.CodeBadRequest,
		},
		{
			name:       "missing required field",
			req:        httptest.NewRequest(http.MethodPost, "/rpc/users.createUser", strings.NewReader(`{"email":"a@x.com"}`)),
			wantStatus: http.StatusBadRequest,
			wantCode:   rpc.CodeBadRequest,
		},
		{
			name:       "malformed input",
			req:        httptest.NewRequest(http.MethodGet, "/rpc/users.getUserById?input=abc", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   rpc.CodeBadRequest,
		},
		{
			name:       "missing input",
			req:        httptest.NewRequest(http.MethodGet, "/rpc/users.getUserById", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   rpc.CodeBadRequest,
		},
		{
			name:       "update without id",
			req:        httptest.NewRequest(http.MethodPost, "/rpc/users.updateUser", strings.NewReader(`{"name":"x"}`)),
			wantStatus: http.StatusBadRequest,
			wantCode:   rpc.CodeBadRequest,
		},
		{
			name:       "unknown parent",
			req:        httptest.NewRequest(http.MethodPost, "/rpc/organization.createOrganization", strings.NewReader(`{"name":"Acme","user_id":999}`)),
			wantStatus: http.StatusBadRequest,
			wantCode:   rpc.CodeBadRequest,
		},
		{
			name:       "absent row",
			req:        httptest.NewRequest(http.MethodGet, "/rpc/workspace.getWorkspaceById?input=42", nil),
			wantStatus: http.StatusNotFound,
			wantCode:   rpc.CodeNotFound,
		},
		{
			name:       "update of absent row",
			req:        httptest.NewRequest(http.MethodPost, "/rpc/bookmark.update", strings.NewReader(`{"id":42,"name":"x"}`)),
			wantStatus: http.StatusNotFound,
			wantCode:   rpc.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := s.do(tt.req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
			assert.Nil(t, env.Result)
		})
	}
}

func TestRPC_DeleteIsIdempotent(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 2; i++ {
		w, env := s.mutate("bookmark.delete", 42)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, env.Error)
	}
}

func TestRPC_RequestBodyTooLarge(t *testing.T) {
	s := newTestServer(t)

	body := fmt.Sprintf(`{"name":"%s","url":"u"}`, strings.Repeat("a", maxInputBytes))
	w, env := s.do(httptest.NewRequest(http.MethodPost, "/rpc/bookmark.create", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, rpc.CodeBadRequest, env.Error.Code)
}

func TestRPC_RequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.query("version", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/rpc/version", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w, _ = s.do(req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRPC_MetricsRecorded(t *testing.T) {
	s := newTestServer(t)

	s.query("version", nil)
	s.query("users.nope", nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `rpc_calls_total{code="OK",procedure="version"} 1`)
	assert.Contains(t, body, `rpc_calls_total{code="BadRequest",procedure="unknown"} 1`)
	assert.Contains(t, body, "rpc_call_duration_seconds")
}
