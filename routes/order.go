package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/order"
	"github.com/day-cohort-70/Bangazon-API-team-3/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Complete an order with a payment type
		orders.PUT("/:orderID", orderControllers.CompleteOrder(db))

		// Fetch a single order
		orders.GET("/:orderID", orderControllers.GetOrder(db))

		// Fetch the caller's order history
		orders.GET("", orderControllers.ListOrders(db))
	}

	// websocket endpoint for real-time completed-order updates
	r.GET("/orders-feed", orderControllers.OrderWebSocketHandler)
}

// SetupReportRoutes registers the back-office reports behind the API key.
func SetupReportRoutes(r *gin.Engine, db *gorm.DB) {
	reports := r.Group("/reports")
	reports.Use(middleware.ValidateAPIKey)
	{
		reports.GET("/orders", orderControllers.PaidOrdersReport(db))
		reports.GET("/orders/export", orderControllers.ExportPaidOrdersToExcel(db))
	}
}
