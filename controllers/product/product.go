package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=0"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	ImagePath   string  `json:"image_path"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	StoreID     uint    `json:"store_id" binding:"required"`
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.InvalidArgument(err.Error()))
			return
		}

		var category models.Category
		if err := db.First(&category, req.CategoryID).Error; err != nil {
			httperr.Respond(c, httperr.NotFound("Category not found"))
			return
		}
		var store models.Store
		if err := db.First(&store, req.StoreID).Error; err != nil {
			httperr.Respond(c, httperr.NotFound("Store not found"))
			return
		}

		product := models.Product{
			Name:        req.Name,
			Price:       req.Price,
			Quantity:    req.Quantity,
			Description: req.Description,
			Location:    req.Location,
			ImagePath:   req.ImagePath,
			CategoryID:  req.CategoryID,
			StoreID:     req.StoreID,
		}
		if err := db.Create(&product).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to create product", err))
			return
		}
		product.Category = category

		c.JSON(http.StatusCreated, product)
	}
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Category").Order("id")
		if raw := c.Query("category"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				httperr.Respond(c, httperr.InvalidArgument("Invalid category filter"))
				return
			}
			query = query.Where("category_id = ?", id)
		}
		if raw := c.Query("store"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				httperr.Respond(c, httperr.InvalidArgument("Invalid store filter"))
				return
			}
			query = query.Where("store_id = ?", id)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to list products", err))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			httperr.Respond(c, httperr.InvalidArgument("Invalid product ID"))
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.NotFound("Product not found"))
				return
			}
			httperr.Respond(c, httperr.Unavailable("failed to load product", err))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
