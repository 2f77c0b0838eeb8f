package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func corsRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORS(origins))
	router.GET("/api/feedbacks", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORSAllowedOrigin(t *testing.T) {
	router := corsRouter([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/api/feedbacks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSUnknownOrigin(t *testing.T) {
	router := corsRouter([]string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/api/feedbacks", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

// 预检响应只暴露反馈接口实际使用的方法和请求头，
// 没有登录态，也就没有Authorization/CSRF之类的头
func TestCORSPreflightSurface(t *testing.T) {
	router := corsRouter([]string{"http://localhost:5173"})
	router.OPTIONS("/api/feedbacks", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/api/feedbacks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "POST, OPTIONS, GET", w.Header().Get("Access-Control-Allow-Methods"))

	headers := w.Header().Get("Access-Control-Allow-Headers")
	assert.Contains(t, headers, "Content-Type")
	assert.NotContains(t, headers, "Authorization")
	assert.NotContains(t, headers, "X-CSRF-Token")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestSecureHeaders(t *testing.T) {
	router := gin.New()
	router.Use(Secure())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRateLimiter(t *testing.T) {
	router := gin.New()
	router.Use(RateLimiter(2, time.Minute))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
