package main

import (
	"flag"
	"log/slog"

	"github.com/soocke/pose-preview-go/app"
	"github.com/soocke/pose-preview-go/config"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	application := app.NewApp("Pose Preview", 800, 600, cfg, *cfgPath, logger)
	application.Start()
}
