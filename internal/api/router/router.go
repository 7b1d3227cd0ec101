package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/capsule-unlocker/internal/api/handlers/unlock"
)

func New(handler *unlock.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/healthz", handler.Health)

	api := e.Group("/api/unlock")
	{
		api.GET("/status", handler.Status)
		api.POST("/run", handler.Run)
	}

	return e
}
