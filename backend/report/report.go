// Package report holds the pothole report model and the filter and
// aggregate functions every dashboard view is projected from.
package report

import (
	"sort"
	"strings"
)

type Report struct {
	ID        string  `json:"id"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    Status  `json:"status"`
}

func (r Report) Color() RGB {
	return ColorOf(r.Status)
}

// Selector picks either every report or the reports of one status.
type Selector struct {
	all    bool
	status Status
}

func SelectAll() Selector {
	return Selector{all: true}
}

func Select(s Status) Selector {
	return Selector{status: s}
}

// ParseSelector accepts "All" (or empty) and any spelling ParseStatus
// accepts. Anything else yields a selector that matches no report.
func ParseSelector(v string) Selector {
	if n := normalize(v); n == "" || n == "all" {
		return SelectAll()
	}
	s, _ := ParseStatus(v)
	return Select(s)
}

func (s Selector) All() bool {
	return s.all
}

func (s Selector) Status() Status {
	return s.status
}

func (s Selector) Matches(r Report) bool {
	if s.all {
		return true
	}
	return s.status.Known() && r.Status == s.status
}

func (s Selector) String() string {
	if s.all {
		return "All"
	}
	return s.status.String()
}

// Value is the form used in query strings and selector options.
func (s Selector) Value() string {
	if s.all {
		return "all"
	}
	return s.status.Slug()
}

func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Selector) UnmarshalText(b []byte) error {
	*s = ParseSelector(string(b))
	return nil
}

// Selectors lists the filter options in display order.
func Selectors() []Selector {
	r := []Selector{SelectAll()}
	for _, st := range Statuses {
		r = append(r, Select(st))
	}
	return r
}

// Filter returns the reports matched by sel in their original order.
// The result never aliases the input.
func Filter(reports []Report, sel Selector) []Report {
	r := make([]Report, 0, len(reports))
	for _, rep := range reports {
		if sel.Matches(rep) {
			r = append(r, rep)
		}
	}
	return r
}

type StatusCounts map[Status]int

// CountByStatus tallies the known statuses. All three keys are always
// present; reports with other statuses are not counted.
func CountByStatus(reports []Report) StatusCounts {
	c := make(StatusCounts, len(Statuses))
	for _, s := range Statuses {
		c[s] = 0
	}
	for _, rep := range reports {
		if rep.Status.Known() {
			c[rep.Status]++
		}
	}
	return c
}

func (c StatusCounts) Total() int {
	t := 0
	for _, s := range Statuses {
		t += c[s]
	}
	return t
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// CountByLocation groups by exact location name. Groups are ordered by
// count descending, equal counts keep first-seen order.
func CountByLocation(reports []Report) []LocationCount {
	r := make([]LocationCount, 0)
	idx := make(map[string]int)
	for _, rep := range reports {
		i, ok := idx[rep.Location]
		if !ok {
			i = len(r)
			idx[rep.Location] = i
			r = append(r, LocationCount{Location: rep.Location})
		}
		r[i].Count++
	}
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].Count > r[j].Count
	})
	return r
}

// Recent renders a sidebar line, e.g. "Charminar — Needs Repair".
func (r Report) Recent() string {
	return strings.Join([]string{r.Location, r.Status.String()}, " — ")
}
