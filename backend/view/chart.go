package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"potholes/backend/report"
)

const (
	DonutSize        = 260.0
	DonutOuterRadius = 120.0
	DonutInnerRadius = 70.0

	BarColor     = "#4e79a7"
	BarRowHeight = 28.0
	BarThickness = 20.0
	BarLabelW    = 140.0
	BarPlotW     = 420.0
	BarMinHeight = 400.0
	BarAxisTitle = "Number of Reports"
	BarAreaTitle = "Area"
)

type Slice struct {
	Status report.Status `json:"status"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
	Share  string        `json:"share"`
	Hex    string        `json:"hex"`
	Path   string        `json:"path"`
}

type Donut struct {
	Size   float64 `json:"size"`
	Total  int     `json:"total"`
	Slices []Slice `json:"slices"`
}

type Bar struct {
	Location string  `json:"location"`
	Count    int     `json:"count"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
}

type Tick struct {
	Value int     `json:"value"`
	X     float64 `json:"x"`
}

type BarChart struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
	Max    int     `json:"max"`
	Bars   []Bar   `json:"bars"`
	Ticks  []Tick  `json:"ticks"`
}

func num(v float64) string {
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// polar returns the point at angle a (radians, clockwise from 12 o'clock)
// on a circle of radius r around the donut center.
func polar(r, a float64) (float64, float64) {
	c := DonutSize / 2
	return c + r*math.Sin(a), c - r*math.Cos(a)
}

// arcPath is a closed ring segment between angles a0 and a1.
func arcPath(a0, a1 float64) string {
	large := 0
	if a1-a0 > math.Pi {
		large = 1
	}
	ox0, oy0 := polar(DonutOuterRadius, a0)
	ox1, oy1 := polar(DonutOuterRadius, a1)
	ix1, iy1 := polar(DonutInnerRadius, a1)
	ix0, iy0 := polar(DonutInnerRadius, a0)
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s ", num(ox0), num(oy0))
	fmt.Fprintf(&b, "A%s,%s 0 %d 1 %s,%s ", num(DonutOuterRadius), num(DonutOuterRadius), large, num(ox1), num(oy1))
	fmt.Fprintf(&b, "L%s,%s ", num(ix1), num(iy1))
	fmt.Fprintf(&b, "A%s,%s 0 %d 0 %s,%s Z", num(DonutInnerRadius), num(DonutInnerRadius), large, num(ix0), num(iy0))
	return b.String()
}

// ringPath is a full ring, drawn as two halves since a single SVG arc
// cannot start and end at the same point.
func ringPath() string {
	return arcPath(0, math.Pi) + " " + arcPath(math.Pi, 2*math.Pi)
}

// NewDonut lays out one slice per status with a non-zero count, in
// status order, starting at 12 o'clock and going clockwise.
func NewDonut(counts report.StatusCounts) Donut {
	total := counts.Total()
	d := Donut{Size: DonutSize, Total: total, Slices: make([]Slice, 0, len(report.Statuses))}
	a := 0.0
	for _, st := range report.Statuses {
		c := counts[st]
		if c == 0 {
			continue
		}
		sweep := 2 * math.Pi * float64(c) / float64(total)
		s := Slice{
			Status: st,
			Label:  st.String(),
			Count:  c,
			Share:  Share(c, total),
			Hex:    report.ColorOf(st).Hex(),
		}
		if c == total {
			s.Path = ringPath()
		} else {
			s.Path = arcPath(a, a+sweep)
		}
		d.Slices = append(d.Slices, s)
		a += sweep
	}
	return d
}

// NewBarChart keeps the order of locations, top to bottom.
func NewBarChart(locations []report.LocationCount) BarChart {
	bc := BarChart{
		Width:  BarLabelW + BarPlotW + 20,
		Height: math.Max(BarMinHeight, BarRowHeight*float64(len(locations))+40),
		Color:  BarColor,
		Bars:   make([]Bar, 0, len(locations)),
	}
	for _, l := range locations {
		bc.Max = max(bc.Max, l.Count)
	}
	for i, l := range locations {
		w := 0.0
		if bc.Max > 0 {
			w = BarPlotW * float64(l.Count) / float64(bc.Max)
		}
		bc.Bars = append(bc.Bars, Bar{
			Location: l.Location,
			Count:    l.Count,
			Y:        BarRowHeight * float64(i),
			Width:    w,
		})
	}
	for v := 0; bc.Max > 0 && v <= bc.Max; v++ {
		bc.Ticks = append(bc.Ticks, Tick{
			Value: v,
			X:     BarLabelW + BarPlotW*float64(v)/float64(bc.Max),
		})
	}
	return bc
}
