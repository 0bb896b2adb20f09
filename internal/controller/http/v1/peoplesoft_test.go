package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/STEVENBOBER/LegacyBridge/config"
	"github.com/STEVENBOBER/LegacyBridge/internal/entity"
	"github.com/STEVENBOBER/LegacyBridge/internal/mocks"
	"github.com/STEVENBOBER/LegacyBridge/internal/usecase/peoplesoft"
	"github.com/STEVENBOBER/LegacyBridge/pkg/logger"
)

// setupSimulatedRouter wires the real simulated adapter behind the routes,
// configured with the default service credential.
func setupSimulatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.PeopleSoft{
		BaseURL:  "http://localhost:4000",
		Username: "psadmin",
		Password: "changeme",
	}

	log := logger.New("error")
	router := gin.New()
	NewPeopleSoftRoutes(&router.RouterGroup, peoplesoft.NewSimulated(cfg, log), log)

	return router
}

// setupMockRouter wires a gomock adapter for failure-mapping tests.
func setupMockRouter(t *testing.T) (*gin.Engine, *mocks.MockFeature) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockCtl := gomock.NewController(t)
	feature := mocks.NewMockFeature(mockCtl)

	router := gin.New()
	NewPeopleSoftRoutes(&router.RouterGroup, feature, logger.New("error"))

	return router, feature
}

func doLogin(t *testing.T, router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/peoplesoft/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestPing(t *testing.T) {
	t.Parallel()

	router := setupSimulatedRouter()

	req := httptest.NewRequest(http.MethodGet, "/peoplesoft/ping", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Mock PeopleSoft API reachable", body["message"])
	assert.Equal(t, "http://localhost:4000", body["peoplesoftUrl"])
	assert.NotEmpty(t, body["timeStamp"])
}

func TestLogin_DefaultCredential(t *testing.T) {
	t.Parallel()

	router := setupSimulatedRouter()

	w := doLogin(t, router, "psadmin", "changeme")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	token, _ := body["token"].(string)
	assert.True(t, peoplesoft.HasTokenShape(token))
	assert.InDelta(t, 1800, body["expiresIn"], 0)
	assert.NotEmpty(t, body["issuedAt"])
	assert.NotEmpty(t, body["message"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	router := setupSimulatedRouter()

	w := doLogin(t, router, "x", "y")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body, "token")
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	router := setupSimulatedRouter()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty username", payload: `{"username":"","password":"changeme"}`},
		{name: "empty password", payload: `{"username":"psadmin","password":""}`},
		{name: "no fields", payload: `{}`},
		{name: "empty body", payload: ``},
		{name: "malformed json", payload: `{"username":`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/peoplesoft/login", bytes.NewReader([]byte(tt.payload)))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string

			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "username and password are required", body["error"])
		})
	}
}

func TestGetEmployee_WithoutToken(t *testing.T) {
	t.Parallel()

	router := setupSimulatedRouter()

	req := httptest.NewRequest(http.MethodGet, "/peoplesoft/employees/42", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetEmployee_WithIssuedToken(t *testing.T) {
	t.Parallel()

	router := setupSimulatedRouter()

	// full issue and verify round trip through the surface
	loginResp := doLogin(t, router, "psadmin", "changeme")
	require.Equal(t, http.StatusOK, loginResp.Code)

	var login map[string]interface{}

	require.NoError(t, json.Unmarshal(loginResp.Body.Bytes(), &login))

	token, _ := login["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/peoplesoft/employees/42", http.NoBody)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "42", body["employeeId"])
	assert.Equal(t, true, body["mocked"])
	assert.Equal(t, token, body["usedtoken"])
	assert.NotEmpty(t, body["requestedAt"])
}

func TestGetEmployee_NotFoundMapsTo404(t *testing.T) {
	t.Parallel()

	router, feature := setupMockRouter(t)

	feature.EXPECT().
		GetEmployeeByID(gomock.Any(), "ghost", gomock.Any()).
		Return(entity.Employee{}, peoplesoft.NotFoundError{EmployeeID: "ghost"})

	req := httptest.NewRequest(http.MethodGet, "/peoplesoft/employees/ghost", http.NoBody)
	req.Header.Set("Authorization", "Bearer ps-mock-token-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEmployee_UpstreamFailureMapsTo502(t *testing.T) {
	t.Parallel()

	router, feature := setupMockRouter(t)

	feature.EXPECT().
		GetEmployeeByID(gomock.Any(), "42", gomock.Any()).
		Return(entity.Employee{}, peoplesoft.UpstreamError{Op: "getEmployee", Err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodGet, "/peoplesoft/employees/42", http.NoBody)
	req.Header.Set("Authorization", "Bearer ps-mock-token-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPing_UnreachableMapsTo503(t *testing.T) {
	t.Parallel()

	router, feature := setupMockRouter(t)

	feature.EXPECT().
		Ping(gomock.Any()).
		Return(peoplesoft.ConnectivityResult{}, peoplesoft.UnreachableError{Endpoint: "http://x", Err: errors.New("refused")})

	req := httptest.NewRequest(http.MethodGet, "/peoplesoft/ping", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLogin_UnknownFailureMapsTo500(t *testing.T) {
	t.Parallel()

	router, feature := setupMockRouter(t)

	feature.EXPECT().
		Login(gomock.Any(), "psadmin", "changeme").
		Return(peoplesoft.SessionToken{}, errors.New("totally unexpected"))

	w := doLogin(t, router, "psadmin", "changeme")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// internal detail never leaks to the caller
	assert.Equal(t, "Internal Server Error", body["error"])
}
