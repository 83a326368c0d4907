package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/payment"
	productcontroller "github.com/day-cohort-70/Bangazon-API-team-3/controllers/product"
	storeControllers "github.com/day-cohort-70/Bangazon-API-team-3/controllers/store"
	"github.com/day-cohort-70/Bangazon-API-team-3/middleware"
)

// SetupCatalogRoutes registers stores, categories, products and
// payment types. Requires JWT middleware.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	storeGroup := r.Group("/stores")
	storeGroup.Use(middleware.ValidateToken)
	{
		storeGroup.POST("", storeControllers.CreateStore(db)) // POST /stores
		storeGroup.GET("", storeControllers.GetStores(db))    // GET /stores
	}

	categoryGroup := r.Group("/productcategories")
	categoryGroup.Use(middleware.ValidateToken)
	{
		categoryGroup.POST("", productcontroller.CreateCategory(db)) // POST /productcategories
		categoryGroup.GET("", productcontroller.GetCategories(db))   // GET /productcategories
	}

	productGroup := r.Group("/products")
	productGroup.Use(middleware.ValidateToken)
	{
		productGroup.POST("", productcontroller.CreateProduct(db))     // POST /products
		productGroup.GET("", productcontroller.GetProducts(db))        // GET /products
		productGroup.GET("/:id", productcontroller.GetProductByID(db)) // GET /products/:id
	}

	paymentGroup := r.Group("/paymenttypes")
	paymentGroup.Use(middleware.ValidateToken)
	{
		paymentGroup.POST("", paymentControllers.CreatePayment(db))     // POST /paymenttypes
		paymentGroup.GET("", paymentControllers.GetPayments(db))        // GET /paymenttypes
		paymentGroup.GET("/:id", paymentControllers.GetPaymentByID(db)) // GET /paymenttypes/:id
	}
}
