package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Help(c *gin.Context) {
	c.String(http.StatusOK, `
	City Potholes Tracker API, version 2.0.

	GET  /                     dashboard page, ?status=all|needs-repair|under-repair|fixed
	GET  /api/v1/statuses      status palette
	GET  /api/v1/reports       filtered reports
	GET  /api/v1/stats         total and per-status counts
	GET  /api/v1/locations     reports per area, most reported first
	GET  /api/v1/dashboard     every dashboard element as JSON
	GET  /api/v1/map.geojson   filtered reports as GeoJSON points
	POST /api/v1/get_map       clustered markers for a viewport
	GET  /ws/dashboard         websocket session, send {"type":"select","status":"Fixed"}
	GET  /health               service health
	GET  /metrics              Prometheus metrics
	`)
}
