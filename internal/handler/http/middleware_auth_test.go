package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-store/internal/utils"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/session", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "whitespace token", header: "Bearer    ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_ValidToken_StoresUserID(t *testing.T) {
	h := newTestHandler()

	var gotUserID string
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, bearer(t, "user-42"), next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotOK)
	assert.Equal(t, "user-42", gotUserID)
}

func TestAuth_Rejections(t *testing.T) {
	expired, err := utils.GenerateJWTToken(testIssuer, "user-42", -time.Minute, testSignKey)
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "user-42", time.Hour, testSignKey)
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken(testIssuer, "user-42", time.Hour, "other-key")
	require.NoError(t, err)
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Issuer: testIssuer}).
		SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{name: "missing header", header: "", wantMsg: ErrEmptyAuthorizationHeader.Error()},
		{name: "malformed header", header: "Token abc", wantMsg: ErrInvalidAuthorizationHeader.Error()},
		{name: "expired token", header: "Bearer " + expired.SignedString, wantMsg: ErrInvalidToken.Error()},
		{name: "wrong issuer", header: "Bearer " + otherIssuer.SignedString, wantMsg: ErrInvalidToken.Error()},
		{name: "wrong key", header: "Bearer " + otherKey.SignedString, wantMsg: ErrInvalidToken.Error()},
		{name: "no subject", header: "Bearer " + noSubject, wantMsg: ErrInvalidToken.Error()},
		{name: "garbage", header: "Bearer not.a.jwt", wantMsg: ErrInvalidToken.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			rr := executeAuth(h, tt.header, next)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantMsg)
		})
	}
}
