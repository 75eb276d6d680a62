package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerAssignsDistinctIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ids []string
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		ids = append(ids, c.GetString("request_id"))
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Len(t, ids, 5)
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "request IDs must not repeat, got %s twice", id)
		seen[id] = true
	}
}

func TestGenerateRequestIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := generateRequestID()
		assert.False(t, seen[id], "duplicate request ID %s", id)
		seen[id] = true
	}
}

func TestGenerateRequestIDShape(t *testing.T) {
	id := generateRequestID()

	require.True(t, strings.HasPrefix(id, "req_"))

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Len(t, parts[1], 14, "timestamp part is yyyymmddhhmmss")
	assert.Len(t, parts[2], 8, "random suffix")
	assert.NotEqual(t, "000000", parts[2])
}
