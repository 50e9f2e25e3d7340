package main

import (
	"flag"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/joho/godotenv"

	"potholes/backend/config"
	"potholes/backend/server"
)

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetHandler(json.New(os.Stderr))
	} else {
		log.SetHandler(text.New(os.Stderr))
	}
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Bad LOG_LEVEL %q, using info", cfg.LogLevel)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

func main() {
	flag.Parse()
	if err := godotenv.Load(); err != nil {
		log.Infof(".env file not found, using system environment variables")
	}
	cfg := config.Load()
	setupLogging(cfg)

	log.Info("Hello!")
	if err := server.StartService(cfg); err != nil {
		log.Fatalf("%v", err)
	}
	log.Info("Bye!")
}
