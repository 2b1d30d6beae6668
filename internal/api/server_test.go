package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/simfabric/internal/config"
	"evalgo.org/simfabric/internal/engine"
	"evalgo.org/simfabric/internal/topology"
)

func setupTestServer(t *testing.T) (*Server, *echo.Echo) {
	t.Helper()

	e := engine.New()
	dc, err := e.Root().AddZone("dc", topology.RoutingFull)
	require.NoError(t, err)
	c0, err := dc.AddZone("c0", topology.RoutingStar)
	require.NoError(t, err)
	for _, name := range []string{"n0", "n1"} {
		h, err := c0.AddHost(name, "2Gf", 8)
		require.NoError(t, err)
		_, err = h.AddDisk(name+"_scratch_disk", "200MBps", "100MBps")
		require.NoError(t, err)
	}
	_, err = dc.AddHost("edge", "1Gf", 4)
	require.NoError(t, err)

	fs := topology.NewFilesystem("scratch", 100)
	dc.AttachFilesystem(fs)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8096,
		},
	}

	server := New(cfg, e)
	return server, server.echo
}

func TestHealth(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, server.health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, server.engine.ID().String(), body["engine"])
}

func TestListZones(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, server.listZones(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var view ZoneView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "root", view.Name)
	require.Len(t, view.Children, 1)
	assert.Equal(t, "dc", view.Children[0].Name)
	require.Len(t, view.Children[0].Children, 1)
	assert.Equal(t, "c0", view.Children[0].Children[0].Name)
	assert.Len(t, view.Children[0].Children[0].Hosts, 2)
}

func TestGetZone(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/c0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("c0")

	require.NoError(t, server.getZone(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var view ZoneView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "c0", view.Name)
	assert.Equal(t, "star", view.Routing)
}

func TestGetZoneNotFound(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("missing")

	err := server.getZone(c)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.Equal(t, "zone not found", apiErr.Message)
	assert.Equal(t, "missing", apiErr.Details)
}

func TestListHosts(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hosts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, server.listHosts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int        `json:"count"`
		Hosts []HostView `json:"hosts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
}

func TestListHostsZoneFilter(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hosts?zone=c0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, server.listHosts(c))

	var body struct {
		Count int        `json:"count"`
		Hosts []HostView `json:"hosts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 2, body.Count)
	for _, h := range body.Hosts {
		assert.Equal(t, "c0", h.Zone)
	}
}

func TestListFilesystems(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/filesystems", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, server.listFilesystems(c))

	var body struct {
		Count       int              `json:"count"`
		Filesystems []FilesystemView `json:"filesystems"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "scratch", body.Filesystems[0].Name)
}

func TestGetSummary(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, server.getSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "=== PLATFORM SUMMARY ===")
	assert.Contains(t, rec.Body.String(), "HOSTS (3):")
}

func TestGetFingerprint(t *testing.T) {
	server, e := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/fingerprint", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, server.getFingerprint(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	assert.Contains(t, lines, "Z:c0:2")
	assert.Contains(t, lines, "H:c0:2Gf:8:1:2")
	assert.Contains(t, lines, "D:200MBps:100MBps:2")
}

func TestHTTPErrorHandlerRoundTrip(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/missing", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
	assert.Equal(t, "zone not found", apiErr.Message)
}
