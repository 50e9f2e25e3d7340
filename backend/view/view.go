// Package view projects a filtered set of reports into everything the
// dashboard draws: metrics, status cards, table rows and both charts.
package view

import (
	"github.com/shopspring/decimal"

	"potholes/backend/report"
)

type Card struct {
	Status report.Status `json:"status"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
	Share  string        `json:"share"`
	Hex    string        `json:"hex"`
	Badge  string        `json:"badge"`
}

type Row struct {
	ID       string        `json:"id"`
	Location string        `json:"location"`
	Status   report.Status `json:"status"`
	Badge    string        `json:"badge"`
	Hex      string        `json:"hex"`
}

type Option struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
	Disabled bool   `json:"disabled,omitempty"`
}

type Dashboard struct {
	Selector  report.Selector        `json:"selector"`
	Options   []Option               `json:"options"`
	Total     int                    `json:"total"`
	Cards     []Card                 `json:"cards"`
	Reports   []report.Report        `json:"reports"`
	Rows      []Row                  `json:"rows"`
	Locations []report.LocationCount `json:"locations"`
	Pie       Donut                  `json:"pie"`
	Bars      BarChart               `json:"bars"`
}

var hundred = decimal.NewFromInt(100)

// Share is count as a percent of total, rounded to one decimal.
// A zero total gives "0.0".
func Share(count, total int) string {
	if total <= 0 {
		return decimal.Zero.StringFixed(1)
	}
	return decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		StringFixed(1)
}

// Build filters all by sel and derives every dashboard element from
// the filtered subset. all is not modified.
func Build(all []report.Report, sel report.Selector) Dashboard {
	filtered := report.Filter(all, sel)
	counts := report.CountByStatus(filtered)
	total := len(filtered)

	d := Dashboard{
		Selector:  sel,
		Total:     total,
		Reports:   filtered,
		Locations: report.CountByLocation(filtered),
	}
	for _, s := range report.Selectors() {
		d.Options = append(d.Options, Option{
			Label:    s.String(),
			Value:    s.Value(),
			Selected: s == sel,
		})
	}
	// An unrecognized selector is shown as picked, so the control never
	// claims "All" over an empty view.
	if !sel.All() && !sel.Status().Known() {
		d.Options = append(d.Options, Option{
			Label:    sel.String(),
			Value:    sel.Value(),
			Selected: true,
			Disabled: true,
		})
	}
	for _, st := range report.Statuses {
		d.Cards = append(d.Cards, Card{
			Status: st,
			Label:  st.String(),
			Count:  counts[st],
			Share:  Share(counts[st], total),
			Hex:    report.ColorOf(st).Hex(),
			Badge:  report.BadgeClass(st),
		})
	}
	d.Rows = make([]Row, 0, len(filtered))
	for _, r := range filtered {
		d.Rows = append(d.Rows, Row{
			ID:       r.ID,
			Location: r.Location,
			Status:   r.Status,
			Badge:    report.BadgeClass(r.Status),
			Hex:      r.Color().Hex(),
		})
	}
	d.Pie = NewDonut(counts)
	d.Bars = NewBarChart(d.Locations)
	return d
}
