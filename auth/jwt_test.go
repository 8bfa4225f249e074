package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/google/uuid"
)

var testSecret = []byte("test-secret")

func TestTokenCreation(t *testing.T) {
	tok := NewTWithSecret(testSecret)
	userID := uuid.NewString()
	tokenString, err := tok.Create(userID)
	if err != nil {
		t.Fatalf("create token failed: %v", err)
	}

	assert.NotEqual(t, "", tokenString)
	assert.Equal(t, tok.Jwt, tokenString)
}

func TestTokenVerification(t *testing.T) {
	tok := NewTWithSecret(testSecret)
	userID := uuid.NewString()
	tokenString, err := tok.Create(userID)
	if err != nil {
		t.Fatalf("create token failed: %v", err)
	}

	id, err := tok.Verify(tokenString)
	if err != nil {
		t.Fatalf("token validation failed: %v", err)
	}

	assert.NotEqual(t, "", id)
	assert.Equal(t, userID, id)
}

func TestTokenWrongSecret(t *testing.T) {
	tokenString, err := NewTWithSecret(testSecret).Create("someone")
	assert.NoError(t, err)

	_, err = NewTWithSecret([]byte("other")).Verify(tokenString)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenExpired(t *testing.T) {
	tok := NewTWithSecret(testSecret)
	tok.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	tokenString, err := tok.Create("someone")
	assert.NoError(t, err)

	_, err = NewTWithSecret(testSecret).Verify(tokenString)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenExtraction(t *testing.T) {
	tok := NewTWithSecret(testSecret)
	userID := uuid.NewString()
	rawToken, err := tok.Create(userID)
	if err != nil {
		t.Fatalf("create token failed: %v", err)
	}
	fakeHeader := "Bearer " + rawToken
	tokenString, err := tok.Extract(fakeHeader)
	if err != nil {
		t.Fatalf("token extraction failed: %v", err)
	}
	assert.NotContains(t, tokenString, "Bearer")
	assert.NotEqual(t, "", tokenString)

	_, err = tok.Extract("Basic abc")
	assert.True(t, errors.Is(err, ErrMissingToken))
	_, err = tok.Extract("")
	assert.True(t, errors.Is(err, ErrMissingToken))
}

func TestMiddleware(t *testing.T) {
	tok := NewTWithSecret(testSecret)
	var seen string
	h := Middleware(tok)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = Subject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/chat", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/chat", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	signed, err := tok.Create("alice")
	assert.NoError(t, err)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/chat", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "alice", seen)
}
