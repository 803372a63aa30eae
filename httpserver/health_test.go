package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"addressbook/httpserver"

	"github.com/stretchr/testify/assert"
)

func TestHealthcheck(t *testing.T) {
	server := httpserver.Default(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	server.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeAPIResponse(t, rec)
	assert.Equal(t, "200", resp.Code)
	assert.Equal(t, "OK", resp.Message)

	var result map[string]string
	decodeAPIResult(t, resp.Result, &result)
	assert.Equal(t, "OK", result["status"])
	assert.Equal(t, "test", result["environment"])
	_, err := time.Parse(time.RFC3339, result["timestamp"])
	assert.NoError(t, err)
}

func TestAPIInfo(t *testing.T) {
	server := httpserver.Default(testConfig())

	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"contacts":"/api/contacts"`)
	assert.Contains(t, rec.Body.String(), `"version":"1.0.0"`)
}
