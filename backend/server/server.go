package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"potholes/backend/config"
	"potholes/backend/dataset"
	"potholes/backend/metrics"
	"potholes/backend/ws"
)

const (
	EndPointDashboard = "/"
	EndPointHelp      = "/help"
	EndPointHealth    = "/health"
	EndPointMetrics   = "/metrics"
	EndPointStatuses  = "/api/v1/statuses"
	EndPointReports   = "/api/v1/reports"
	EndPointStats     = "/api/v1/stats"
	EndPointLocations = "/api/v1/locations"
	EndPointView      = "/api/v1/dashboard"
	EndPointGeoJSON   = "/api/v1/map.geojson"
	EndPointGetMap    = "/api/v1/get_map"
	EndPointWebSocket = "/ws/dashboard"
)

var (
	serverPort = flag.String("port", "", "The port used by the service, overrides PORT.")
)

// NewRouter wires every endpoint over the dataset. hub serves the
// websocket sessions and must be running.
func NewRouter(cfg *config.Config, ds *dataset.Dataset, hub *ws.Hub) *gin.Engine {
	h := newHandler(cfg, ds, hub)
	metrics.Register()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
		AllowOrigins: cfg.AllowOrigins,
		MaxAge:       12 * time.Hour,
	}))
	if cfg.EnableGzip {
		// Websocket upgrades must not be wrapped by the gzip writer.
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{EndPointWebSocket})))
	}
	router.SetHTMLTemplate(template.Must(template.New("").Funcs(funcMap).Parse(tmplDashboard)))

	router.GET(EndPointDashboard, h.Dashboard)
	router.GET(EndPointHelp, Help)
	router.GET(EndPointHealth, h.Health)
	router.GET(EndPointMetrics, gin.WrapH(promhttp.Handler()))
	router.GET(EndPointStatuses, GetStatuses)
	router.GET(EndPointReports, h.GetReports)
	router.GET(EndPointStats, h.GetStats)
	router.GET(EndPointLocations, h.GetLocations)
	router.GET(EndPointView, h.GetView)
	router.GET(EndPointGeoJSON, h.GetGeoJSON)
	router.POST(EndPointGetMap, h.GetMap)
	router.GET(EndPointWebSocket, h.WebSocket)

	return router
}

// StartService loads the dataset, serves until SIGINT or SIGTERM and
// shuts down gracefully.
func StartService(cfg *config.Config) error {
	log.Info("Starting the service...")
	if *serverPort != "" {
		cfg.Port = *serverPort
	}
	gin.SetMode(cfg.GinMode)

	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	metrics.DatasetReports.Set(float64(ds.Len()))
	metrics.DatasetQuarantined.Set(float64(len(ds.Quarantined())))
	log.WithFields(log.Fields{
		"reports":     ds.Len(),
		"quarantined": len(ds.Quarantined()),
		"source":      datasetSource(cfg.DatasetPath),
	}).Info("Dataset loaded")

	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: NewRouter(cfg, ds, hub),
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-quit:
	}

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server exited")
	return nil
}

func datasetSource(path string) string {
	if path == "" {
		return "built-in sample"
	}
	return path
}
