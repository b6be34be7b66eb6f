package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mkhattab22/Schedule/internal/config"
	"github.com/mkhattab22/Schedule/internal/db"
	"github.com/mkhattab22/Schedule/internal/routes"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate all tables before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}

	database, err := db.Open(cfg.DbPath)
	if err != nil {
		logrus.Fatalf("db error: %v", err)
	}

	if *reset {
		logrus.Warn("resetting database: all shifts and upload history will be dropped")
		if err := db.Reset(database); err != nil {
			logrus.Fatalf("db reset error: %v", err)
		}
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logrus.Fatalf("upload dir error: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, database, cfg)

	logrus.WithField("addr", cfg.Addr).Info("server starting")
	if err := router.Run(cfg.Addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
