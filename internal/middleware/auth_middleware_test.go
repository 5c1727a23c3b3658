package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeVerifier accepts a single known token and rejects everything else.
type fakeVerifier struct {
	validToken string
	token      *auth.Token
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if idToken != f.validToken {
		return nil, errors.New("invalid token")
	}
	return f.token, nil
}

func newAuthRouter(verifier TokenVerifier) *gin.Engine {
	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(verifier).VerifyToken(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"email":  c.GetString("userEmail"),
		})
	})
	return router
}

func TestVerifyTokenMissingHeader(t *testing.T) {
	router := newAuthRouter(&fakeVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerifyTokenMalformedHeader(t *testing.T) {
	router := newAuthRouter(&fakeVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerifyTokenRejected(t *testing.T) {
	router := newAuthRouter(&fakeVerifier{validToken: "good"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerifyTokenPopulatesContext(t *testing.T) {
	router := newAuthRouter(&fakeVerifier{
		validToken: "good",
		token: &auth.Token{
			UID: "user-1",
			Claims: map[string]interface{}{
				"email": "ada@example.com",
				"name":  "Ada",
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"userID":"user-1"`)
	assert.Contains(t, rr.Body.String(), `"email":"ada@example.com"`)
}
