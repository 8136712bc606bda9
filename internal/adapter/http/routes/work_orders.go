package routes

import (
	"oscell/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/work-orders"
)

// The counter is shared by the whole installation, so every work order route
// needs a signed-in subject.
func addWorkOrderRoutes(rg *gin.RouterGroup, requireSubject gin.HandlerFunc, h *handlers.WorkOrderHandler) {
	workOrders := rg.Group(PathWorkOrders, requireSubject)
	{
		workOrders.GET("/next-number", h.NextNumber)
		workOrders.GET("/counter", h.Counter)
		workOrders.POST("/commit", h.Commit)
		workOrders.GET("/draft", h.NewDraft)
		workOrders.POST("/preview", h.Preview)
		workOrders.POST("/print", h.Print)
		workOrders.POST("/pdf", h.Download)
	}
}
