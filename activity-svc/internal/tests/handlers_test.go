package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "rik-restaurant/activity-svc/internal/api/http"
	"rik-restaurant/activity-svc/internal/domain"
	"rik-restaurant/activity-svc/internal/service"
	"rik-restaurant/activity-svc/internal/storage"
	"rik-restaurant/auth"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "activity-test-secret"

type testEnv struct {
	router http.Handler
	feed   *storage.Feed
	hub    *service.Hub
}

func setupTestRouter(t *testing.T) testEnv {
	t.Helper()
	feed, _ := setupFeed(t, 20)
	hub := service.NewHub()
	handler := httpapi.NewHandler(service.NewActivityService(feed, feed.Size), hub)
	return testEnv{
		router: httpapi.NewRouter(handler, auth.NewAuthenticator(testSecret)),
		feed:   feed,
		hub:    hub,
	}
}

func token(t *testing.T, email, role string) string {
	t.Helper()
	tok, err := auth.IssueToken(testSecret, email, role, time.Hour)
	require.NoError(t, err)
	return tok
}

func get(router http.Handler, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := setupTestRouter(t)
	rec := get(env.router, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestActivityEndpoints_Authorization(t *testing.T) {
	env := setupTestRouter(t)
	admin := token(t, "boss@rik.ee", auth.RoleAdmin)
	ann := token(t, "ann@example.com", auth.RoleUser)

	tests := []struct {
		name   string
		path   string
		bearer string
		want   int
	}{
		{name: "guest recent", path: "/api/activity", want: http.StatusForbidden},
		{name: "user recent", path: "/api/activity", bearer: ann, want: http.StatusForbidden},
		{name: "admin recent", path: "/api/activity", bearer: admin, want: http.StatusOK},
		{name: "user counts", path: "/api/activity/counts", bearer: ann, want: http.StatusForbidden},
		{name: "admin counts", path: "/api/activity/counts", bearer: admin, want: http.StatusOK},
		{name: "guest own feed", path: "/api/activity/users/guest", want: http.StatusUnauthorized},
		{name: "user own feed", path: "/api/activity/users/ann@example.com", bearer: ann, want: http.StatusOK},
		{name: "user other feed", path: "/api/activity/users/bob@example.com", bearer: ann, want: http.StatusForbidden},
		{name: "admin other feed", path: "/api/activity/users/bob@example.com", bearer: admin, want: http.StatusOK},
		{name: "bad limit", path: "/api/activity?limit=abc", bearer: admin, want: http.StatusBadRequest},
		{name: "forged token", path: "/api/activity", bearer: "not-a-jwt", want: http.StatusUnauthorized},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := get(env.router, testCase.path, testCase.bearer)
			assert.Equal(t, testCase.want, rec.Code, rec.Body.String())
		})
	}
}

func TestActivityEndpoints_ReturnFeed(t *testing.T) {
	env := setupTestRouter(t)
	ctx := context.Background()
	require.NoError(t, env.feed.Record(ctx, domain.Event{ID: "e1", Type: "order.placed", Identity: "ann@example.com"}))
	require.NoError(t, env.feed.Record(ctx, domain.Event{ID: "e2", Type: "inquiry.submitted", Identity: "bob@example.com"}))
	admin := token(t, "boss@rik.ee", auth.RoleAdmin)

	rec := get(env.router, "/api/activity?limit=1", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []domain.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "e2", events[0].ID)

	rec = get(env.router, "/api/activity/users/ann@example.com", token(t, "ann@example.com", auth.RoleUser))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)

	rec = get(env.router, "/api/activity/counts", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"order.placed":1,"inquiry.submitted":1}`, rec.Body.String())
}

func dialActivity(t *testing.T, server *httptest.Server, bearer string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/activity"
	if bearer != "" {
		url += "?access_token=" + bearer
	}
	return websocket.DefaultDialer.Dial(url, nil)
}

func readEvent(t *testing.T, conn *websocket.Conn) domain.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event domain.Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestActivityStream(t *testing.T) {
	env := setupTestRouter(t)
	server := httptest.NewServer(env.router)
	defer server.Close()

	_, resp, err := dialActivity(t, server, "")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	adminConn, _, err := dialActivity(t, server, token(t, "boss@rik.ee", auth.RoleAdmin))
	require.NoError(t, err)
	defer adminConn.Close()
	annConn, _, err := dialActivity(t, server, token(t, "ann@example.com", auth.RoleUser))
	require.NoError(t, err)
	defer annConn.Close()

	require.Eventually(t, func() bool { return env.hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	env.hub.Broadcast(domain.Event{ID: "e1", Type: "booking.confirmed", Identity: "bob@example.com"})
	env.hub.Broadcast(domain.Event{ID: "e2", Type: "order.placed", Identity: "ann@example.com"})

	assert.Equal(t, "e1", readEvent(t, adminConn).ID)
	assert.Equal(t, "e2", readEvent(t, adminConn).ID)
	assert.Equal(t, "e2", readEvent(t, annConn).ID)

	annConn.Close()
	require.Eventually(t, func() bool { return env.hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
}
