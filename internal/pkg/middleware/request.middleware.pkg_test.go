package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestInitMintsFreshID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen []string
	r := gin.New()
	r.Use(RequestInit())
	r.GET("/", func(c *gin.Context) {
		seen = append(seen, c.GetString("requestId"))
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	}

	require.Len(t, seen, 2)
	assert.NotEqual(t, seen[0], seen[1])
	for _, id := range seen {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
}

func TestCorsMiddlewarePermissive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CorsMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Headers"))

	pre := httptest.NewRecorder()
	r.ServeHTTP(pre, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusNoContent, pre.Code)
}
