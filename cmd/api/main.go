package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/barberia-app/barberia-api/internal/config"
	dbpkg "github.com/barberia-app/barberia-api/internal/db"
	"github.com/barberia-app/barberia-api/internal/logger"
	"github.com/barberia-app/barberia-api/internal/routes"
)

func main() {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync() //nolint:errcheck

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)
	rdb := dbpkg.NewRedis(cfg, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
