package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rik-restaurant/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "auth-test-secret"

func whoami(w http.ResponseWriter, r *http.Request) {
	p := auth.PrincipalFrom(r.Context())
	json.NewEncoder(w).Encode(map[string]string{"email": p.Email, "role": p.Role})
}

func serve(h http.Handler, target, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	a := auth.NewAuthenticator(secret)
	h := a.Middleware(http.HandlerFunc(whoami))

	user, err := auth.IssueToken(secret, "ann@example.com", auth.RoleUser, time.Hour)
	require.NoError(t, err)
	admin, err := auth.IssueToken(secret, "boss@rik.ee", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	expired, err := auth.IssueToken(secret, "ann@example.com", auth.RoleUser, -time.Minute)
	require.NoError(t, err)
	foreign, err := auth.IssueToken("other-secret", "ann@example.com", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "carl@example.com"}).SignedString([]byte(secret))
	require.NoError(t, err)
	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name     string
		target   string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "guest", target: "/", wantCode: http.StatusOK, wantBody: `{"email":"","role":""}`},
		{name: "user", target: "/", header: "Bearer " + user, wantCode: http.StatusOK, wantBody: `{"email":"ann@example.com","role":"user"}`},
		{name: "admin", target: "/", header: "Bearer " + admin, wantCode: http.StatusOK, wantBody: `{"email":"boss@rik.ee","role":"admin"}`},
		{name: "role defaults to user", target: "/", header: "Bearer " + noRole, wantCode: http.StatusOK, wantBody: `{"email":"carl@example.com","role":"user"}`},
		{name: "query token", target: "/?access_token=" + user, wantCode: http.StatusOK, wantBody: `{"email":"ann@example.com","role":"user"}`},
		{name: "basic scheme", target: "/", header: "Basic Zm9vOmJhcg==", wantCode: http.StatusUnauthorized},
		{name: "expired", target: "/", header: "Bearer " + expired, wantCode: http.StatusUnauthorized},
		{name: "wrong secret", target: "/", header: "Bearer " + foreign, wantCode: http.StatusUnauthorized},
		{name: "missing email", target: "/", header: "Bearer " + noEmail, wantCode: http.StatusUnauthorized},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := serve(h, testCase.target, testCase.header)
			assert.Equal(t, testCase.wantCode, rec.Code)
			if testCase.wantBody != "" {
				assert.JSONEq(t, testCase.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGuards(t *testing.T) {
	a := auth.NewAuthenticator(secret)
	userOnly := a.Middleware(auth.RequireUser(http.HandlerFunc(whoami)))
	adminOnly := a.Middleware(auth.RequireAdmin(http.HandlerFunc(whoami)))

	user, err := auth.IssueToken(secret, "ann@example.com", auth.RoleUser, time.Hour)
	require.NoError(t, err)
	admin, err := auth.IssueToken(secret, "boss@rik.ee", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, serve(userOnly, "/", "").Code)
	assert.Equal(t, http.StatusOK, serve(userOnly, "/", "Bearer "+user).Code)
	assert.Equal(t, http.StatusForbidden, serve(adminOnly, "/", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(adminOnly, "/", "Bearer "+user).Code)
	assert.Equal(t, http.StatusOK, serve(adminOnly, "/", "Bearer "+admin).Code)
}

func TestMiddleware_MissingSecret(t *testing.T) {
	h := auth.NewAuthenticator("").Middleware(http.HandlerFunc(whoami))

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "eve@example.com", "role": "admin"}).SignedString([]byte("guessed"))
	require.NoError(t, err)

	rec := serve(h, "/", "Bearer "+forged)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "eve@example.com")

	rec = serve(h, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"","role":""}`, rec.Body.String())
}
