package map_aggr

import (
	"potholes/backend/report"
	"potholes/backend/server/api"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	expectedCells = 16
	minLevel      = 2
	maxLevel      = 18
	// Clusters up to this size are returned as their individual reports.
	maxIndividual = 10
	// A child whose size is this many times smaller than the largest
	// sibling does not pull the cluster pin.
	weightDiffThreshold = 8
)

// cluster is a group of reports within one S2 cell.
type cluster struct {
	size     int64
	counts   report.StatusCounts
	children [4]bool
	pin      s2.Point
	members  []api.MapResult // nil once size > maxIndividual
}

func newCluster() *cluster {
	return &cluster{counts: make(report.StatusCounts)}
}

func (c *cluster) add(m api.MapResult) {
	c.size++
	c.counts[m.Status]++
	c.members = append(c.members, m)
}

func (c *cluster) absorb(o *cluster) {
	c.size += o.size
	for st, n := range o.counts {
		c.counts[st] += n
	}
	c.members = append(c.members, o.members...)
}

// status is the one status every member shares, or Unknown.
func (c *cluster) status() report.Status {
	st, seen := report.Unknown, false
	for s, n := range c.counts {
		if n == 0 {
			continue
		}
		if seen {
			return report.Unknown
		}
		st, seen = s, true
	}
	return st
}

func (c *cluster) marker() api.MapResult {
	ll := s2.LatLngFromPoint(c.pin)
	st := c.status()
	counts := make(report.StatusCounts, len(c.counts))
	for s, n := range c.counts {
		if n > 0 {
			counts[s] = n
		}
	}
	return api.MapResult{
		Latitude:  ll.Lat.Degrees(),
		Longitude: ll.Lng.Degrees(),
		Count:     c.size,
		Status:    st,
		Color:     report.ColorOf(st).Array(),
		Statuses:  counts,
	}
}

type clusterer struct {
	level    int
	clusters map[s2.CellID]*cluster
}

// CellBaseLevel is the coarsest level clusters are merged up to: the
// level at which the viewport is covered by roughly expectedCells cells
// around center.
func CellBaseLevel(vp *api.ViewPort, center *api.Point) int {
	minLL := s2.LatLngFromDegrees(vp.LatMin, vp.LonMin)
	maxLL := s2.LatLngFromDegrees(vp.LatMax, vp.LonMax)
	rect := s2.Rect{
		Lat: r1.Interval{Lo: minLL.Lat.Radians(), Hi: maxLL.Lat.Radians()},
		Lng: s1.Interval{Lo: minLL.Lng.Radians(), Hi: maxLL.Lng.Radians()},
	}
	area := rect.Area()

	cc := s2.CellIDFromLatLng(s2.LatLngFromDegrees(center.Lat, center.Lon))
	for lv := maxLevel; lv >= minLevel; lv-- {
		if area/s2.CellFromCellID(cc.Parent(lv)).ApproxArea() < expectedCells {
			return lv
		}
	}
	return minLevel
}

func newClusterer(vp *api.ViewPort, center *api.Point) *clusterer {
	return &clusterer{
		level:    CellBaseLevel(vp, center),
		clusters: make(map[s2.CellID]*cluster),
	}
}

// addReport places a single report marker in its leaf cell.
func (a *clusterer) addReport(r report.Report) {
	cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(r.Latitude, r.Longitude)).Parent(maxLevel)
	c, ok := a.clusters[cell]
	if !ok {
		c = newCluster()
		c.pin = s2.PointFromLatLng(cell.LatLng())
		a.clusters[cell] = c
	}
	c.add(api.MapResult{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Count:     1,
		ReportID:  r.ID,
		Location:  r.Location,
		Status:    r.Status,
		Color:     r.Color().Array(),
	})
}

// pinOf places a merged cluster at the centroid of its heavy children.
func pinOf(cell s2.CellID, children []*cluster) s2.Point {
	heaviest := int64(0)
	for _, ch := range children {
		heaviest = max(heaviest, ch.size)
	}
	pins := make([]s2.Point, 0, len(children))
	for _, ch := range children {
		if heaviest/ch.size < weightDiffThreshold {
			pins = append(pins, ch.pin)
		}
	}
	switch len(pins) {
	case 1:
		return pins[0]
	case 2:
		return s2.PlanarCentroid(pins[0], pins[0], pins[1])
	case 3:
		return s2.PlanarCentroid(pins[0], pins[1], pins[2])
	}
	return s2.PointFromLatLng(cell.LatLng())
}

// mergeUp replaces every cluster on level+1 by its parent on level.
func (a *clusterer) mergeUp(level int) {
	next := make(map[s2.CellID]*cluster, len(a.clusters))
	for cell, c := range a.clusters {
		p := cell.Parent(level)
		pc, ok := next[p]
		if !ok {
			pc = newCluster()
			next[p] = pc
		}
		pc.absorb(c)
		pc.children[cell.ChildPosition(level+1)] = true
	}
	for cell, pc := range next {
		if pc.size > maxIndividual {
			pc.members = nil
		}
		children := make([]*cluster, 0, 4)
		for i, ok := range pc.children {
			if !ok {
				continue
			}
			if ch, found := a.clusters[cell.Children()[i]]; found {
				children = append(children, ch)
			}
		}
		pc.pin = pinOf(cell, children)
	}
	a.clusters = next
}

func (a *clusterer) result() []api.MapResult {
	for _, c := range a.clusters {
		if c.size > maxIndividual {
			c.members = nil
		}
	}
	for lv := maxLevel - 1; lv >= a.level; lv-- {
		a.mergeUp(lv)
	}
	r := make([]api.MapResult, 0, len(a.clusters))
	for _, c := range a.clusters {
		if c.size <= maxIndividual {
			r = append(r, c.members...)
		} else {
			r = append(r, c.marker())
		}
	}
	return r
}

// Cluster groups reports into markers for the given viewport. Small
// groups stay individual reports. Larger groups become one marker with
// a per-status breakdown, colored by their status if all members share
// one and neutral otherwise.
func Cluster(reports []report.Report, vp *api.ViewPort, center *api.Point) []api.MapResult {
	a := newClusterer(vp, center)
	for _, r := range reports {
		a.addReport(r)
	}
	return a.result()
}
