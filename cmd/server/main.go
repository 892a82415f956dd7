package main

import (
	"log"

	"github.com/dancestudio/internal/config"
	"github.com/dancestudio/internal/db"
	"github.com/dancestudio/internal/handler"
	"github.com/dancestudio/internal/router"
	"github.com/dancestudio/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(db.Options{
		Driver:   cfg.DatabaseDriver,
		Path:     cfg.DatabasePath,
		DSN:      cfg.DatabaseURL,
		LogLevel: cfg.DatabaseLogLevel,
	}); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	images := storage.NewImageStore(cfg.UploadDir, cfg.UploadURLPath, cfg.MaxUploadBytes)
	api := handler.NewAPI(db.DB, images, cfg.PageExcludeSlugs)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, images.Dir(), images.URLPath())
	log.Printf("listening on %s (%s store)", cfg.ListenAddr, cfg.DatabaseDriver)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
