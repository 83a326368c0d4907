package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/cart"
	likeControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/like"
	lineitemControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/lineitem"
	"github.com/day-cohort-70/Bangazon-API-team-3/middleware"
)

// SetupCartRoutes registers the shopping-cart, line-item and like
// endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))                       // GET /cart
		cartGroup.POST("", cartControllers.AddToCart(db))                    // POST /cart
		cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(db)) // DELETE /cart/:product_id
	}

	lineItemGroup := r.Group("/lineitems")
	lineItemGroup.Use(middleware.ValidateToken)
	{
		lineItemGroup.GET("/:id", lineitemControllers.Get(db))    // GET /lineitems/:id
		lineItemGroup.PUT("/:id", lineitemControllers.Update(db)) // PUT /lineitems/:id
	}

	likeGroup := r.Group("/likes")
	likeGroup.Use(middleware.ValidateToken)
	{
		likeGroup.POST("", likeControllers.ToggleLike(db)) // POST /likes
		likeGroup.GET("", likeControllers.ListLikes(db))   // GET /likes?product=&customer=
	}
}
