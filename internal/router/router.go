package router

import (
	"net/http"

	"github.com/dancestudio/internal/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, uploadDir, uploadURL string) *gin.Engine {
	r := gin.Default()
	r.Use(handler.RequestID())

	// 上传文件服务
	if uploadDir != "" && uploadURL != "" {
		r.Static(uploadURL, uploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api.Register(r)

	return r
}
