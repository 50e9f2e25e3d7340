package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
)

type Config struct {
	// Server
	Host         string
	Port         string
	GinMode      string
	AllowOrigins []string
	EnableGzip   bool

	// Logging
	LogLevel  string
	LogFormat string

	// Dataset, empty means the built-in sample
	DatasetPath string

	// Map view state
	MapCenterLat float64
	MapCenterLon float64
	MapZoom      int
	MarkerRadius float64
}

func Load() *Config {
	return &Config{
		Host:         getEnv("HOST", "0.0.0.0"),
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "release"),
		AllowOrigins: parseList(getEnv("ALLOW_ORIGINS", "*")),
		EnableGzip:   getEnvAsBool("ENABLE_GZIP", true),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		DatasetPath:  getEnv("DATASET_PATH", ""),
		MapCenterLat: getEnvAsFloat("MAP_CENTER_LAT", 17.3850),
		MapCenterLon: getEnvAsFloat("MAP_CENTER_LON", 78.4867),
		MapZoom:      getEnvAsInt("MAP_ZOOM", 11),
		MarkerRadius: getEnvAsFloat("MARKER_RADIUS", 400),
	}
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		log.Warnf("Bad integer %q in %s, using %d", value, key, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warnf("Bad number %q in %s, using %g", value, key, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("Bad boolean %q in %s, using %t", value, key, defaultValue)
		return defaultValue
	}
	return v
}

// parseList splits a comma separated list. An empty list means "*".
func parseList(s string) []string {
	var r []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			r = append(r, p)
		}
	}
	if len(r) == 0 {
		return []string{"*"}
	}
	return r
}
