package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/STEVENBOBER/LegacyBridge/pkg/logger"
)

func TestGetHealth(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", NewHealthHandler("LegacyBridge API", logger.New("error")).GetHealth)

	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "LegacyBridge API", body["service"])

	uptime, ok := body["uptime"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, uptime, 0.0)

	timeStamp, _ := body["timeStamp"].(string)
	_, err := time.Parse(time.RFC3339, timeStamp)
	assert.NoError(t, err)
}
