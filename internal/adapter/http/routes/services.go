package routes

import (
	"oscell/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathServices = "/services"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/anonymous", h.SignInAnonymously)
	}
}

func addServiceRoutes(rg *gin.RouterGroup, requireSubject gin.HandlerFunc, records *handlers.ServiceRecordHandler, stream *handlers.ServiceStreamHandler) {
	// Date shortcuts carry no personal data and are used before sign-in.
	rg.GET(PathServices+"/dates/:shortcut", records.ResolveDateShortcut)

	services := rg.Group(PathServices, requireSubject)
	{
		services.GET("", records.ListServiceRecords)
		services.POST("", records.CreateServiceRecord)
		services.GET("/stream", stream.Stream)
		services.GET("/:id", records.GetServiceRecord)
		services.PUT("/:id", records.UpdateServiceRecord)
		services.DELETE("/:id", records.DeleteServiceRecord)
	}
}
