package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /productcategories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.InvalidArgument("name is required"))
			return
		}

		category := models.Category{Name: req.Name}
		if err := db.Create(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				httperr.Respond(c, httperr.Conflict("Category already exists"))
				return
			}
			httperr.Respond(c, httperr.Unavailable("failed to create category", err))
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// GET /productcategories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to list categories", err))
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
