package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkhattab22/Schedule/internal/config"
	"github.com/mkhattab22/Schedule/internal/handlers"
	"github.com/mkhattab22/Schedule/internal/middleware"
	"github.com/mkhattab22/Schedule/internal/store"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	router.Use(middleware.Cors(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "schedule-backend"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	scheduleHandler := handlers.NewScheduleHandler(store.NewShiftStore(db), cfg.UploadDir, cfg.BaseURL)

	api := router.Group("/api")
	{
		api.POST("/upload", scheduleHandler.Upload)
		api.GET("/employees/:date", scheduleHandler.ListByDate)
		api.GET("/uploads", scheduleHandler.ListUploads)
		api.POST("/confirm", scheduleHandler.Confirm)
		api.GET("/links/:date", scheduleHandler.Links)
	}

	if cfg.PublicDir != "" {
		router.Static("/app", cfg.PublicDir)
	}
}
