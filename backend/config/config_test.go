package config

import (
	"os"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "GIN_MODE", "ALLOW_ORIGINS", "ENABLE_GZIP", "LOG_LEVEL",
		"LOG_FORMAT", "DATASET_PATH", "MAP_CENTER_LAT", "MAP_CENTER_LON", "MAP_ZOOM", "MARKER_RADIUS"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Expected default address, got %s", cfg.Addr())
	}
	if cfg.MapCenterLat != 17.3850 || cfg.MapCenterLon != 78.4867 || cfg.MapZoom != 11 {
		t.Errorf("Unexpected map defaults %v, %v, %v", cfg.MapCenterLat, cfg.MapCenterLon, cfg.MapZoom)
	}
	if cfg.MarkerRadius != 400 {
		t.Errorf("Expected marker radius 400, got %v", cfg.MarkerRadius)
	}
	if !cfg.EnableGzip {
		t.Errorf("Expected gzip on by default")
	}
	if !reflect.DeepEqual(cfg.AllowOrigins, []string{"*"}) {
		t.Errorf("Unexpected origins %v", cfg.AllowOrigins)
	}
	if cfg.DatasetPath != "" {
		t.Errorf("Expected the built-in dataset by default, got %q", cfg.DatasetPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAP_ZOOM", "13")
	t.Setenv("MAP_CENTER_LAT", "17.44")
	t.Setenv("ENABLE_GZIP", "false")
	t.Setenv("ALLOW_ORIGINS", " https://a.example , ,https://b.example ")
	t.Setenv("DATASET_PATH", "data/reports.yaml")
	cfg := Load()

	if cfg.Port != "9090" || cfg.MapZoom != 13 || cfg.MapCenterLat != 17.44 || cfg.EnableGzip {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.AllowOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("Unexpected origins %v", cfg.AllowOrigins)
	}
	if cfg.DatasetPath != "data/reports.yaml" {
		t.Errorf("Unexpected dataset path %q", cfg.DatasetPath)
	}
}

func TestBadValuesFallBack(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
		get  func() interface{}
		want interface{}
	}{
		{"int", "TEST_INT", "eleven", func() interface{} { return getEnvAsInt("TEST_INT", 11) }, 11},
		{"float", "TEST_FLOAT", "north", func() interface{} { return getEnvAsFloat("TEST_FLOAT", 1.5) }, 1.5},
		{"bool", "TEST_BOOL", "maybe", func() interface{} { return getEnvAsBool("TEST_BOOL", true) }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv(tc.key, tc.val)
			defer os.Unsetenv(tc.key)

			if got := tc.get(); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}
