package server

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"potholes/backend/map_aggr"
	"potholes/backend/report"
	"potholes/backend/server/api"
)

// GetMap clusters the filtered reports for a viewport. A zero viewport
// is replaced by the bounding box of the filtered reports.
func (h *handler) GetMap(c *gin.Context) {
	var ma api.MapArgs

	if err := c.BindJSON(&ma); err != nil {
		log.Errorf("Failed to get the argument in %s call: %v", EndPointGetMap, err)
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "could not read JSON input"})
		return
	}

	if ma.Version != api.Version {
		log.Errorf("Bad version in %s, expected: %s, got: %v", EndPointGetMap, api.Version, ma.Version)
		c.JSON(http.StatusNotAcceptable, api.ErrorResponse{Error: "bad API version, expecting " + api.Version})
		return
	}

	d := h.build(report.ParseSelector(ma.Status))
	if ma.Center == (api.Point{}) {
		ma.Center = api.Point{Lat: h.cfg.MapCenterLat, Lon: h.cfg.MapCenterLon}
	}
	if ma.VPort == (api.ViewPort{}) {
		ma.VPort = map_aggr.BoundingViewPort(d.Reports, ma.Center, 0.01)
	}
	c.IndentedJSON(http.StatusOK, map_aggr.Cluster(d.Reports, &ma.VPort, &ma.Center))
}
