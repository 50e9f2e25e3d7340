package api

import (
	"potholes/backend/report"
)

const Version = "2.0"

type MapArgs struct {
	Version string   `json:"version"` // Must be "2.0"
	Status  string   `json:"status"`  // Selector, empty means all.
	VPort   ViewPort `json:"vport"`
	Center  Point    `json:"center"`
}

type MapResult struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Count     int64         `json:"count"`
	ReportID  string        `json:"report_id,omitempty"` // Empty if Count > 1
	Location  string        `json:"location,omitempty"`  // Empty if Count > 1
	Status    report.Status `json:"status"`              // Shared status of a cluster, Unknown if mixed
	Color     [3]uint8      `json:"color"`

	// Per-status breakdown, only set if Count > 1.
	Statuses report.StatusCounts `json:"statuses,omitempty"`
}

type ViewPort struct {
	LatMin float64 `json:"latmin"`
	LonMin float64 `json:"lonmin"`
	LatMax float64 `json:"latmax"`
	LonMax float64 `json:"lonmax"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type StatusInfo struct {
	Status string     `json:"status"`
	Label  string     `json:"label"`
	Slug   string     `json:"slug"`
	Color  report.RGB `json:"color"`
	Hex    string     `json:"hex"`
	Badge  string     `json:"badge"`
}

type StatusesResponse struct {
	Statuses []StatusInfo `json:"statuses"`
}

type ReportsResponse struct {
	Selector string          `json:"selector"`
	Reports  []report.Report `json:"reports"`
	Count    int             `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Share  string `json:"share"` // Percent of the filtered total, one decimal.
	Hex    string `json:"hex"`
}

type StatsResponse struct {
	Selector string        `json:"selector"`
	Total    int           `json:"total"`
	Counts   []StatusCount `json:"counts"`
}

type LocationsResponse struct {
	Selector  string                 `json:"selector"`
	Locations []report.LocationCount `json:"locations"`
	Count     int                    `json:"count"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	Timestamp        string `json:"timestamp"`
	Reports          int    `json:"reports"`
	Quarantined      int    `json:"quarantined"`
	ConnectedClients int    `json:"connected_clients"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
