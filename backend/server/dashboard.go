package server

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"potholes/backend/report"
	"potholes/backend/view"
)

type heading struct {
	Text  string
	Class string
}

type mapState struct {
	CenterLat  float64
	CenterLon  float64
	Zoom       int
	Radius     float64
	GeoJSONURL string
}

type page struct {
	Title      string
	Caption    string
	PaletteCSS template.CSS
	View    view.Dashboard
	Map     mapState

	MapHeading   heading
	TableHeading heading
	ChartHeading heading
	AreaHeading  string
	BarAxisTitle string
	BarAreaTitle string
	BarLabelW    float64
}

// paletteCSS derives every status styled class (cards, badges, the
// sidebar heading) from report.ColorOf.
func paletteCSS() template.CSS {
	var b strings.Builder
	sts := append([]report.Status{}, report.Statuses...)
	for _, st := range append(sts, report.Unknown) {
		cls := report.BadgeClass(st)
		fmt.Fprintf(&b, ".card.%s,.badge.%s{background:%s}\n", cls, cls, report.ColorOf(st).Hex())
	}
	fmt.Fprintf(&b, "aside h3{background:linear-gradient(90deg,%s,%s)}\n",
		report.ColorOf(report.NeedsRepair).Hex(), report.ColorOf(report.UnderRepair).Hex())
	return template.CSS(b.String())
}

var pagePalette = paletteCSS()

var funcMap = template.FuncMap{
	"num": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
	"add": func(a, b float64) float64 {
		return a + b
	},
}

// Dashboard renders the whole page for the selector in ?status=.
func (h *handler) Dashboard(c *gin.Context) {
	sel := selectorFrom(c)
	c.HTML(http.StatusOK, "dashboard", page{
		Title:      "City Potholes Tracker",
		Caption:    "Report and track road maintenance",
		PaletteCSS: pagePalette,
		View:       h.build(sel),
		Map: mapState{
			CenterLat:  h.cfg.MapCenterLat,
			CenterLon:  h.cfg.MapCenterLon,
			Zoom:       h.cfg.MapZoom,
			Radius:     h.cfg.MarkerRadius,
			GeoJSONURL: EndPointGeoJSON + "?" + url.Values{"status": {sel.Value()}}.Encode(),
		},
		MapHeading:   heading{"📍 Pothole Locations", "h-map"},
		TableHeading: heading{"📋 All Reports", "h-table"},
		ChartHeading: heading{"📊 Repair Status Overview", "h-chart"},
		AreaHeading:  "📍 Reports by Area",
		BarAxisTitle: view.BarAxisTitle,
		BarAreaTitle: view.BarAreaTitle,
		BarLabelW:    view.BarLabelW,
	})
}
