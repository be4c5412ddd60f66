package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func authRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, OwnerID(c))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	r := authRouter(cfg)

	valid := sign(t, "s3cret", jwt.MapClaims{"sub": "42", "exp": time.Now().Add(time.Hour).Unix()})
	expired := sign(t, "s3cret", jwt.MapClaims{"sub": "42", "exp": time.Now().Add(-time.Hour).Unix()})
	foreign := sign(t, "other", jwt.MapClaims{"sub": "42"})
	noSub := sign(t, "s3cret", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	tests := []struct {
		name   string
		header string
		query  string
		status int
		body   string
	}{
		{"valid header", "Bearer " + valid, "", http.StatusOK, "42"},
		{"valid query token", "", "?access_token=" + valid, http.StatusOK, "42"},
		{"missing", "", "", http.StatusUnauthorized, "missing_authorization_header"},
		{"wrong scheme", "Basic " + valid, "", http.StatusUnauthorized, "invalid_authorization_header"},
		{"expired", "Bearer " + expired, "", http.StatusUnauthorized, "invalid_token"},
		{"wrong secret", "Bearer " + foreign, "", http.StatusUnauthorized, "invalid_token"},
		{"no subject", "Bearer " + noSub, "", http.StatusUnauthorized, "invalid_token_payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(2, zap.NewNop())

	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()), rl.Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(60, zap.NewNop())
	now := time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		rl.limiterFor(ip)
	}
	assert.Len(t, rl.visitors, 3)

	now = now.Add(2 * time.Minute)
	rl.limiterFor("10.0.0.1")
	assert.Len(t, rl.visitors, 3, "nobody idle long enough yet")

	now = now.Add(2 * time.Minute)
	rl.limiterFor("10.0.0.4")
	assert.Len(t, rl.visitors, 2)
	assert.Contains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.4")
}
