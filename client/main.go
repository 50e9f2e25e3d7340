// Dev/test client for dev/test/troubleshooting.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/apex/log"

	"potholes/backend/server"
	"potholes/backend/server/api"
)

const contentType = "application/json"

var (
	baseURL = flag.String("url", "http://127.0.0.1:8080", "Dashboard server base URL.")
	status  = flag.String("status", "all", "Status selector.")
)

func query() string {
	return "?" + url.Values{"status": {*status}}.Encode()
}

func getJSON(path string, v interface{}) error {
	resp, err := http.Get(*baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s: %s", path, resp.Status, body)
	}
	return json.Unmarshal(body, v)
}

func doStats() {
	var r api.StatsResponse
	if err := getJSON(server.EndPointStats+query(), &r); err != nil {
		log.Errorf("Stats failed with %v", err)
		return
	}
	log.Infof("%s: %d reports", r.Selector, r.Total)
	for _, c := range r.Counts {
		log.Infof("  %-13s %3d  %5s%%", c.Status, c.Count, c.Share)
	}
}

func doLocations() {
	var r api.LocationsResponse
	if err := getJSON(server.EndPointLocations+query(), &r); err != nil {
		log.Errorf("Locations failed with %v", err)
		return
	}
	for _, l := range r.Locations {
		log.Infof("  %-15s %d", l.Location, l.Count)
	}
}

func doMap() {
	buf, err := json.Marshal(api.MapArgs{
		Version: api.Version,
		Status:  *status,
		VPort:   api.ViewPort{LatMin: 17.2, LonMin: 78.2, LatMax: 17.6, LonMax: 78.7},
		Center:  api.Point{Lat: 17.3850, Lon: 78.4867},
	})
	if err != nil {
		log.Errorf("Failed to serialize map arguments: %v", err)
		return
	}
	resp, err := http.Post(*baseURL+server.EndPointGetMap, contentType, bytes.NewBuffer(buf))
	if err != nil {
		log.Errorf("Failed to call the server with %v", err)
		return
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("Failed to read the response: %v", err)
		return
	}
	var res []api.MapResult
	if err := json.Unmarshal(body, &res); err != nil {
		log.Errorf("Bad map response, %s: %s", resp.Status, body)
		return
	}
	for _, m := range res {
		if m.Count > 1 {
			log.Infof("  cluster of %d at %.4f,%.4f: %v", m.Count, m.Latitude, m.Longitude, m.Statuses)
		} else {
			log.Infof("  %s at %.4f,%.4f: %v", m.Location, m.Latitude, m.Longitude, m.Status)
		}
	}
}

func main() {
	flag.Parse()
	doStats()
	doLocations()
	doMap()
}
