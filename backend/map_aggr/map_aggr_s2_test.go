package map_aggr

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"potholes/backend/dataset"
	"potholes/backend/report"
	"potholes/backend/server/api"
)

func reportsAt(n int, lat, lon float64, st report.Status) []report.Report {
	r := make([]report.Report, 0, n)
	for i := 0; i < n; i++ {
		r = append(r, report.Report{
			ID:        fmt.Sprintf("r%d-%g-%g", i, lat, lon),
			Location:  "Kukatpally",
			Latitude:  lat,
			Longitude: lon,
			Status:    st,
		})
	}
	return r
}

func totalCount(res []api.MapResult) int64 {
	t := int64(0)
	for _, r := range res {
		t += r.Count
	}
	return t
}

func TestClusterFewPointsStayIndividual(t *testing.T) {
	vp := api.ViewPort{LatMin: 17.2, LonMin: 78.2, LatMax: 17.6, LonMax: 78.7}
	center := api.Point{Lat: 17.385, Lon: 78.4867}
	rs := []report.Report{
		{ID: "a", Location: "Charminar", Latitude: 17.3616, Longitude: 78.4747, Status: report.NeedsRepair},
		{ID: "b", Location: "Hitech City", Latitude: 17.4435, Longitude: 78.3772, Status: report.UnderRepair},
		{ID: "c", Location: "Secunderabad", Latitude: 17.4399, Longitude: 78.4983, Status: report.Fixed},
	}

	res := Cluster(rs, &vp, &center)
	if len(res) != 3 {
		t.Fatalf("Expected 3 markers, got %d: %v", len(res), res)
	}
	e := map[string]report.RGB{
		"a": report.ColorOf(report.NeedsRepair),
		"b": report.ColorOf(report.UnderRepair),
		"c": report.ColorOf(report.Fixed),
	}
	for _, r := range res {
		if r.Count != 1 {
			t.Errorf("Marker %s has count %d, expected 1", r.ReportID, r.Count)
		}
		c, ok := e[r.ReportID]
		if !ok {
			t.Errorf("The result %q is not expected.", r.ReportID)
			continue
		}
		if r.Color != c.Array() {
			t.Errorf("Marker %s has color %v, expected %v", r.ReportID, r.Color, c.Array())
		}
	}
}

func TestClusterAggregatesDensePoints(t *testing.T) {
	vp := api.ViewPort{LatMin: 10, LonMin: 70, LatMax: 25, LonMax: 85}
	center := api.Point{Lat: 17.5, Lon: 77.5}
	rs := append(reportsAt(12, 17.4948, 78.3996, report.NeedsRepair),
		reportsAt(1, -33.8688, 151.2093, report.Fixed)...)

	res := Cluster(rs, &vp, &center)
	if totalCount(res) != int64(len(rs)) {
		t.Errorf("Clustering lost points: %d vs %d", totalCount(res), len(rs))
	}
	var agg *api.MapResult
	for i := range res {
		if res[i].Count > 1 {
			agg = &res[i]
		}
	}
	if agg == nil {
		t.Fatalf("Expected an aggregated marker, got %v", res)
	}
	if agg.Count != 12 {
		t.Errorf("Expected 12 reports in the aggregate, got %d", agg.Count)
	}
	if agg.ReportID != "" || agg.Location != "" {
		t.Errorf("Aggregated marker must not carry report details, got %v", agg)
	}
	if agg.Status != report.NeedsRepair {
		t.Errorf("Cluster of one status has status %v, expected %v", agg.Status, report.NeedsRepair)
	}
	if e := report.ColorOf(report.NeedsRepair).Array(); agg.Color != e {
		t.Errorf("Cluster of one status has color %v, expected %v", agg.Color, e)
	}
	if diff := cmp.Diff(report.StatusCounts{report.NeedsRepair: 12}, agg.Statuses); diff != "" {
		t.Errorf("Statuses mismatch (-want +got):\n%s", diff)
	}
}

func TestClusterMixedStatuses(t *testing.T) {
	vp := api.ViewPort{LatMin: 10, LonMin: 70, LatMax: 25, LonMax: 85}
	center := api.Point{Lat: 17.5, Lon: 77.5}
	rs := append(reportsAt(7, 17.4948, 78.3996, report.NeedsRepair),
		reportsAt(5, 17.4948, 78.3996, report.Fixed)...)

	res := Cluster(rs, &vp, &center)
	if len(res) != 1 {
		t.Fatalf("Expected one cluster, got %v", res)
	}
	agg := res[0]
	if agg.Count != 12 || agg.Status != report.Unknown {
		t.Errorf("Unexpected cluster %v", agg)
	}
	if agg.Color != report.Neutral.Array() {
		t.Errorf("Mixed cluster color %v, expected neutral", agg.Color)
	}
	e := report.StatusCounts{report.NeedsRepair: 7, report.Fixed: 5}
	if diff := cmp.Diff(e, agg.Statuses); diff != "" {
		t.Errorf("Statuses mismatch (-want +got):\n%s", diff)
	}

	b, err := json.Marshal(agg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var back api.MapResult
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal of %s failed: %v", b, err)
	}
	if diff := cmp.Diff(e, back.Statuses); diff != "" {
		t.Errorf("Statuses after JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestClusterKeepsStatusSplit(t *testing.T) {
	vp := api.ViewPort{LatMin: 0, LonMin: 60, LatMax: 35, LonMax: 95}
	center := api.Point{Lat: 17.4, Lon: 78.4}
	res := Cluster(dataset.Sample().Reports(), &vp, &center)

	got := report.StatusCounts{}
	for _, r := range res {
		if r.Count == 1 {
			got[r.Status]++
			continue
		}
		for st, n := range r.Statuses {
			got[st] += n
		}
	}
	e := report.StatusCounts{report.NeedsRepair: 7, report.UnderRepair: 4, report.Fixed: 4}
	if diff := cmp.Diff(e, got); diff != "" {
		t.Errorf("Status split mismatch (-want +got):\n%s", diff)
	}
	if totalCount(res) != 15 {
		t.Errorf("Clustering lost points: %d", totalCount(res))
	}
}

func TestClusterEmpty(t *testing.T) {
	vp := api.ViewPort{LatMin: 17.2, LonMin: 78.2, LatMax: 17.6, LonMax: 78.7}
	center := api.Point{Lat: 17.385, Lon: 78.4867}
	if res := Cluster(nil, &vp, &center); len(res) != 0 {
		t.Errorf("Expected no markers, got %v", res)
	}
}

func TestCellBaseLevel(t *testing.T) {
	center := api.Point{Lat: 17.385, Lon: 78.4867}
	small := api.ViewPort{LatMin: 17.38, LonMin: 78.48, LatMax: 17.39, LonMax: 78.49}
	large := api.ViewPort{LatMin: 0, LonMin: 60, LatMax: 35, LonMax: 95}
	ls, ll := CellBaseLevel(&small, &center), CellBaseLevel(&large, &center)
	if ls <= ll {
		t.Errorf("Expected a finer level for the smaller viewport, got %d vs %d", ls, ll)
	}
	if ls > maxLevel || ll < minLevel {
		t.Errorf("Levels %d, %d outside of [%d, %d]", ls, ll, minLevel, maxLevel)
	}
}

func TestBoundingViewPort(t *testing.T) {
	rs := []report.Report{
		{Latitude: 17.3616, Longitude: 78.4747},
		{Latitude: 17.4948, Longitude: 78.3996},
		{Latitude: 17.3457, Longitude: 78.5510},
	}
	vp := BoundingViewPort(rs, api.Point{}, 0.01)
	e := api.ViewPort{LatMin: 17.3357, LonMin: 78.3896, LatMax: 17.5048, LonMax: 78.5610}
	const eps = 1e-9
	for _, p := range [][2]float64{
		{vp.LatMin, e.LatMin}, {vp.LonMin, e.LonMin}, {vp.LatMax, e.LatMax}, {vp.LonMax, e.LonMax},
	} {
		if d := p[0] - p[1]; d > eps || d < -eps {
			t.Errorf("BoundingViewPort() = %v, expected %v", vp, e)
			break
		}
	}

	empty := BoundingViewPort(nil, api.Point{Lat: 17, Lon: 78}, 1)
	if empty != (api.ViewPort{LatMin: 16, LonMin: 77, LatMax: 18, LonMax: 79}) {
		t.Errorf("Unexpected empty viewport %v", empty)
	}
}

func TestFeatureCollection(t *testing.T) {
	rs := []report.Report{
		{ID: "a", Location: "Charminar", Latitude: 17.3616, Longitude: 78.4747, Status: report.NeedsRepair},
	}
	b, err := json.Marshal(FeatureCollection(rs, 400))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties struct {
				Location string   `json:"location"`
				Status   string   `json:"status"`
				Color    [3]uint8 `json:"color"`
				Hex      string   `json:"hex"`
				Radius   float64  `json:"radius"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(b, &fc); err != nil {
		t.Fatalf("Unmarshal of %s failed: %v", b, err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 1 {
		t.Fatalf("Unexpected collection %s", b)
	}
	f := fc.Features[0]
	if f.ID != "a" || f.Geometry.Type != "Point" {
		t.Errorf("Unexpected feature %s", b)
	}
	if f.Geometry.Coordinates[0] != 78.4747 || f.Geometry.Coordinates[1] != 17.3616 {
		t.Errorf("Coordinates must be [lon, lat], got %v", f.Geometry.Coordinates)
	}
	if f.Properties.Status != "Needs Repair" || f.Properties.Hex != "#ff4b4b" || f.Properties.Radius != 400 {
		t.Errorf("Unexpected properties %+v", f.Properties)
	}
	if f.Properties.Color != [3]uint8{255, 75, 75} {
		t.Errorf("Unexpected color %v", f.Properties.Color)
	}
}
