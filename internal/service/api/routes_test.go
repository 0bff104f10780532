package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/ramprice-server/internal/pkg/version"
	"github.com/darkkaiser/ramprice-server/internal/service/api/handler/system"
	systemmodel "github.com/darkkaiser/ramprice-server/internal/service/api/model/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	h := system.NewHandler(nil, version.Info{Version: "test"})

	RegisterRoutes(e, h)

	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	assert.True(t, routes["GET /health"], "/health 라우트가 등록되어야 합니다")
	assert.True(t, routes["GET /version"], "/version 라우트가 등록되어야 합니다")
	assert.True(t, routes["GET /swagger/*"], "/swagger/* 라우트가 등록되어야 합니다")
}

// TestRegisterRoutes_HealthEndpoint 미들웨어 체인을 통과한 헬스체크 응답을 검증합니다.
func TestRegisterRoutes_HealthEndpoint(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	h := system.NewHandler(nil, version.Info{Version: "test"})

	RegisterRoutes(e, h)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp systemmodel.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}

// TestRegisterRoutes_VersionEndpoint 버전 정보 응답을 검증합니다.
func TestRegisterRoutes_VersionEndpoint(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	h := system.NewHandler(nil, version.Info{Version: "1.0.0", Commit: "abc1234"})

	RegisterRoutes(e, h)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp systemmodel.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "abc1234", resp.Commit)
}
