// Package dataset holds the immutable set of pothole reports the
// dashboard is rendered from.
package dataset

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/apex/log"
	"github.com/google/uuid"

	"potholes/backend/report"
)

var (
	ErrUnknownStatus  = errors.New("unknown status")
	ErrBadCoordinates = errors.New("coordinates out of range")
)

// Row is one raw record before validation.
type Row struct {
	Location  string  `yaml:"location" json:"location"`
	Latitude  float64 `yaml:"lat" json:"lat"`
	Longitude float64 `yaml:"lon" json:"lon"`
	Status    string  `yaml:"status" json:"status"`
}

// Rejected is a row kept out of the dataset, with the reason.
type Rejected struct {
	Index int   `json:"index"`
	Row   Row   `json:"row"`
	Err   error `json:"-"`
}

func (r Rejected) Error() string {
	return fmt.Sprintf("row %d (%q): %v", r.Index, r.Row.Location, r.Err)
}

func (r Rejected) Unwrap() error {
	return r.Err
}

// Dataset is read-only after construction and safe to share.
type Dataset struct {
	reports     []report.Report
	quarantined []Rejected
}

// idSpace namespaces report IDs so they are stable across restarts.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("potholes/reports"))

func reportID(i int, location string) string {
	return uuid.NewSHA1(idSpace, []byte(strconv.Itoa(i)+":"+location)).String()
}

func validate(row Row) (report.Status, error) {
	st, ok := report.ParseStatus(row.Status)
	if !ok {
		return report.Unknown, fmt.Errorf("%w %q", ErrUnknownStatus, row.Status)
	}
	if row.Latitude < -90 || row.Latitude > 90 || row.Longitude < -180 || row.Longitude > 180 {
		return report.Unknown, fmt.Errorf("%w: %g,%g", ErrBadCoordinates, row.Latitude, row.Longitude)
	}
	return st, nil
}

// New validates rows in order. Rows that fail validation are quarantined
// and logged, they never reach the dataset.
func New(rows []Row) *Dataset {
	d := &Dataset{
		reports: make([]report.Report, 0, len(rows)),
	}
	for i, row := range rows {
		st, err := validate(row)
		if err != nil {
			rj := Rejected{Index: i, Row: row, Err: err}
			log.WithFields(log.Fields{
				"index":    i,
				"location": row.Location,
				"status":   row.Status,
			}).Warnf("Quarantined dataset row: %v", err)
			d.quarantined = append(d.quarantined, rj)
			continue
		}
		d.reports = append(d.reports, report.Report{
			ID:        reportID(i, row.Location),
			Location:  row.Location,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Status:    st,
		})
	}
	return d
}

// Reports returns a copy of the reports in insertion order.
func (d *Dataset) Reports() []report.Report {
	r := make([]report.Report, len(d.reports))
	copy(r, d.reports)
	return r
}

func (d *Dataset) Len() int {
	return len(d.reports)
}

// Quarantined returns a copy of the rejected rows.
func (d *Dataset) Quarantined() []Rejected {
	r := make([]Rejected, len(d.quarantined))
	copy(r, d.quarantined)
	return r
}
