package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"impactio/internal/app"
	"impactio/internal/config"
)

// @title           Impactio One lead dashboard API
// @version         1.0
// @description     Metrics, charts, filtered lead table and exports for the lead dashboard.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zap.L().Sync() }()

	if err := app.Run(cfg); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
