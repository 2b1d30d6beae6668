package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"evalgo.org/simfabric/internal/fingerprint"
	"evalgo.org/simfabric/internal/summary"
	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/internal/version"
)

// health handles GET /health
func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": version.Get().Version,
		"engine":  s.engine.ID().String(),
	})
}

// listZones handles GET /api/v1/zones
func (s *Server) listZones(c echo.Context) error {
	return c.JSON(http.StatusOK, zoneView(s.engine.Root()))
}

// getZone handles GET /api/v1/zones/:name
func (s *Server) getZone(c echo.Context) error {
	name := c.Param("name")
	zone := s.engine.ZoneByName(name)
	if zone == nil {
		return NotFoundError("zone", name)
	}
	return c.JSON(http.StatusOK, zoneView(zone))
}

// listHosts handles GET /api/v1/hosts
func (s *Server) listHosts(c echo.Context) error {
	zoneFilter := c.QueryParam("zone")

	var hosts []HostView
	for _, h := range s.engine.AllHosts() {
		if zoneFilter != "" && h.Zone().Name != zoneFilter {
			continue
		}
		hosts = append(hosts, hostView(h))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"count": len(hosts),
		"hosts": hosts,
	})
}

// listFilesystems handles GET /api/v1/filesystems
func (s *Server) listFilesystems(c echo.Context) error {
	var views []FilesystemView
	topology.Walk(s.engine.Root(), func(z *topology.Zone) bool {
		for _, fs := range z.Filesystems() {
			views = append(views, filesystemView(fs))
		}
		return true
	})
	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":       len(views),
		"filesystems": views,
	})
}

// getSummary handles GET /api/v1/summary
func (s *Server) getSummary(c echo.Context) error {
	return c.String(http.StatusOK, summary.Summarize(s.engine.Root()))
}

// getFingerprint handles GET /api/v1/fingerprint
func (s *Server) getFingerprint(c echo.Context) error {
	return c.String(http.StatusOK, fingerprint.Collect(s.engine.Root()).Serialize())
}
