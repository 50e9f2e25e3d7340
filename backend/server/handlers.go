package server

import (
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"potholes/backend/config"
	"potholes/backend/dataset"
	"potholes/backend/map_aggr"
	"potholes/backend/metrics"
	"potholes/backend/report"
	"potholes/backend/server/api"
	"potholes/backend/view"
	"potholes/backend/ws"
)

const serviceName = "pothole-dashboard"

type handler struct {
	cfg *config.Config
	ds  *dataset.Dataset
	hub *ws.Hub
}

func newHandler(cfg *config.Config, ds *dataset.Dataset, hub *ws.Hub) *handler {
	return &handler{cfg: cfg, ds: ds, hub: hub}
}

func selectorFrom(c *gin.Context) report.Selector {
	return report.ParseSelector(c.Query("status"))
}

// build is the single recompute path every surface goes through.
func (h *handler) build(sel report.Selector) view.Dashboard {
	metrics.SelectionsTotal.WithLabelValues(sel.Value()).Inc()
	return view.Build(h.ds.Reports(), sel)
}

func (h *handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{
		Status:           "healthy",
		Service:          serviceName,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		Reports:          h.ds.Len(),
		Quarantined:      len(h.ds.Quarantined()),
		ConnectedClients: h.hub.ConnectedClients(),
	})
}

func GetStatuses(c *gin.Context) {
	r := api.StatusesResponse{}
	for _, st := range report.Statuses {
		r.Statuses = append(r.Statuses, api.StatusInfo{
			Status: st.Ident(),
			Label:  st.String(),
			Slug:   st.Slug(),
			Color:  report.ColorOf(st),
			Hex:    report.ColorOf(st).Hex(),
			Badge:  report.BadgeClass(st),
		})
	}
	c.JSON(http.StatusOK, r)
}

func (h *handler) GetReports(c *gin.Context) {
	sel := selectorFrom(c)
	d := h.build(sel)
	c.JSON(http.StatusOK, api.ReportsResponse{
		Selector: sel.String(),
		Reports:  d.Reports,
		Count:    len(d.Reports),
	})
}

func (h *handler) GetStats(c *gin.Context) {
	sel := selectorFrom(c)
	d := h.build(sel)
	r := api.StatsResponse{
		Selector: sel.String(),
		Total:    d.Total,
		Counts:   make([]api.StatusCount, 0, len(d.Cards)),
	}
	for _, card := range d.Cards {
		r.Counts = append(r.Counts, api.StatusCount{
			Status: card.Label,
			Count:  card.Count,
			Share:  card.Share,
			Hex:    card.Hex,
		})
	}
	c.JSON(http.StatusOK, r)
}

func (h *handler) GetLocations(c *gin.Context) {
	sel := selectorFrom(c)
	d := h.build(sel)
	c.JSON(http.StatusOK, api.LocationsResponse{
		Selector:  sel.String(),
		Locations: d.Locations,
		Count:     len(d.Locations),
	})
}

func (h *handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, h.build(selectorFrom(c)))
}

func (h *handler) GetGeoJSON(c *gin.Context) {
	d := h.build(selectorFrom(c))
	c.JSON(http.StatusOK, map_aggr.FeatureCollection(d.Reports, h.cfg.MarkerRadius))
}

func (h *handler) WebSocket(c *gin.Context) {
	render := func(sel report.Selector) interface{} {
		return h.build(sel)
	}
	if err := ws.Serve(h.hub, c.Writer, c.Request, selectorFrom(c), render); err != nil {
		log.Errorf("Failed to upgrade connection to WebSocket: %v", err)
	}
}
