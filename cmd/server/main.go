package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/covergen/internal/api"
	"github.com/youruser/covergen/internal/config"
	"github.com/youruser/covergen/internal/presets"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfgPath := os.Getenv("CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// Custom presets are optional; the built-in catalogs always exist.
	if cfg.PresetsDir != "" {
		added, err := presets.LoadDir(cfg.PresetsDir, logger)
		if err != nil {
			logger.Warn("loading custom presets", zap.Error(err))
		} else if added > 0 {
			logger.Info("loaded custom presets", zap.Int("count", added))
		}
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandlers(logger))

	logger.Info("starting server", zap.String("addr", ":"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
