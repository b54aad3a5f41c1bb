package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techcomputer/portal/core"
	"github.com/techcomputer/portal/core/user"
	"github.com/techcomputer/portal/gateway"
	"github.com/techcomputer/portal/session"
)

func newTestClient(t *testing.T, handler http.Handler, sess core.SessionStore, opts ...gateway.Option) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &core.Config{}
	conf.API.BaseURL = srv.URL
	return gateway.NewClient(conf, sess, opts...)
}

func TestClient_bearerInjection(t *testing.T) {
	var gotAuth, gotReqID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]user.User{})
	})

	t.Run("authenticated", func(t *testing.T) {
		sess := session.NewMemStore(core.Session{Token: "tok123"})
		repo := gateway.NewUserRepository(newTestClient(t, handler, sess))

		if _, err := repo.QueryAllUsers(context.Background()); err != nil {
			t.Fatalf("QueryAllUsers() failed: %v", err)
		}
		assert.Equal(t, "Bearer tok123", gotAuth)
		assert.NotEmpty(t, gotReqID)
	})

	t.Run("anonymous", func(t *testing.T) {
		repo := gateway.NewUserRepository(newTestClient(t, handler, session.NewMemStore()))

		if _, err := repo.QueryAllUsers(context.Background()); err != nil {
			t.Fatalf("QueryAllUsers() failed: %v", err)
		}
		assert.Empty(t, gotAuth)
	})
}

func TestClient_unauthorizedTeardown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "jwt expired"})
	})

	sess := session.NewMemStore(core.Session{Token: "stale", User: core.Profile{ID: "u1"}})
	var hookCalls int
	repo := gateway.NewUserRepository(newTestClient(t, handler, sess,
		gateway.WithUnauthorizedHook(func() { hookCalls++ })))

	_, err := repo.QueryAllUsers(context.Background())
	assert.True(t, core.IsUnauthorized(err))
	assert.Equal(t, "jwt expired", core.APIErrorMessage(err))

	stored, _ := sess.Load()
	assert.False(t, stored.Authenticated(), "session must be cleared on 401")
	assert.Equal(t, 1, hookCalls, "hook runs exactly once per response")

	// a second 401 tears down again without error; Clear is idempotent
	_, err = repo.QueryAllUsers(context.Background())
	assert.True(t, core.IsUnauthorized(err))
	assert.Equal(t, 2, hookCalls)
}

func TestClient_errorMessagesSurfaceVerbatim(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode int
	}{
		{name: "bad request", status: 400, body: `{"message":"You have already applied for this course"}`,
			wantMsg: "You have already applied for this course", wantCode: 400},
		{name: "forbidden", status: 403, body: `{"message":"Payment not verified yet"}`,
			wantMsg: "Payment not verified yet", wantCode: 403},
		{name: "no body falls back to status text", status: 500, body: "",
			wantMsg: "Internal Server Error", wantCode: 500},
		{name: "non-json body falls back to status text", status: 502, body: "<html>bad gateway</html>",
			wantMsg: "Bad Gateway", wantCode: 502},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			repo := gateway.NewUserRepository(newTestClient(t, handler, session.NewMemStore()))

			_, err := repo.QueryAllUsers(context.Background())
			if !assert.Error(t, err) {
				return
			}
			assert.Equal(t, tt.wantMsg, core.APIErrorMessage(err))
			aerr, ok := err.(*core.APIError)
			if assert.True(t, ok) {
				assert.Equal(t, tt.wantCode, aerr.StatusCode)
			}
		})
	}
}

func TestClient_Upload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		file, hdr, err := r.FormFile("image")
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		defer file.Close()
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.test.tc/" + hdr.Filename})
	})
	c := newTestClient(t, handler, session.NewMemStore())

	url, err := c.Upload(context.Background(), "photo.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Upload() failed: %v", err)
	}
	assert.Equal(t, "https://cdn.test.tc/photo.jpg", url)
}

func TestClient_WithSession(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]user.User{})
	})

	base := newTestClient(t, handler, session.NewMemStore())
	bound := base.WithSession(session.NewMemStore(core.Session{Token: "per-request"}))

	if _, err := gateway.NewUserRepository(bound).QueryAllUsers(context.Background()); err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	assert.Equal(t, "Bearer per-request", gotAuth)

	// the base client keeps its own (empty) session
	if _, err := gateway.NewUserRepository(base).QueryAllUsers(context.Background()); err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	assert.Empty(t, gotAuth)
}
