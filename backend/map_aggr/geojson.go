package map_aggr

import (
	"potholes/backend/report"
	"potholes/backend/server/api"

	geojson "github.com/paulmach/go.geojson"
)

// FeatureCollection renders reports as a point layer. Each feature
// carries the location, status label and [r, g, b] color of the report.
func FeatureCollection(reports []report.Report, radius float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range reports {
		f := geojson.NewPointFeature([]float64{r.Longitude, r.Latitude})
		f.ID = r.ID
		f.SetProperty("location", r.Location)
		f.SetProperty("status", r.Status.String())
		f.SetProperty("color", r.Color().Array())
		f.SetProperty("hex", r.Color().Hex())
		f.SetProperty("radius", radius)
		fc.AddFeature(f)
	}
	return fc
}

// BoundingViewPort is the smallest viewport containing every report,
// widened by pad degrees on each side. An empty input gives a viewport
// of pad around center.
func BoundingViewPort(reports []report.Report, center api.Point, pad float64) api.ViewPort {
	if len(reports) == 0 {
		return api.ViewPort{
			LatMin: center.Lat - pad,
			LonMin: center.Lon - pad,
			LatMax: center.Lat + pad,
			LonMax: center.Lon + pad,
		}
	}
	vp := api.ViewPort{
		LatMin: reports[0].Latitude,
		LonMin: reports[0].Longitude,
		LatMax: reports[0].Latitude,
		LonMax: reports[0].Longitude,
	}
	for _, r := range reports[1:] {
		vp.LatMin = min(vp.LatMin, r.Latitude)
		vp.LonMin = min(vp.LonMin, r.Longitude)
		vp.LatMax = max(vp.LatMax, r.Latitude)
		vp.LonMax = max(vp.LonMax, r.Longitude)
	}
	vp.LatMin -= pad
	vp.LonMin -= pad
	vp.LatMax += pad
	vp.LonMax += pad
	return vp
}
