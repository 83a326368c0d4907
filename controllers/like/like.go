package likeControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/middleware"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

type ToggleLikeRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// LikeFilter holds the optional filters for listing likes. Apply
// composes a query from only the filters that are present.
type LikeFilter struct {
	ProductID  *uint
	CustomerID *uint
}

func (f LikeFilter) Empty() bool {
	return f.ProductID == nil && f.CustomerID == nil
}

func (f LikeFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.ProductID != nil {
		db = db.Where("product_id = ?", *f.ProductID)
	}
	if f.CustomerID != nil {
		db = db.Where("customer_id = ?", *f.CustomerID)
	}
	return db
}

// ToggleResult reports which terminal state the toggle produced.
type ToggleResult struct {
	Added bool
	Like  *models.Like
}

// -------- Core Logic --------

// Toggle flips the like state for (customer, product). Both outcomes
// are successes: present becomes absent and absent becomes present.
// The composite unique index backs this up under concurrent toggles, a
// racing insert surfaces as a duplicate key and is flipped off.
func Toggle(db *gorm.DB, customerID, productID uint) (*ToggleResult, *httperr.Error) {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Product not found")
		}
		return nil, httperr.Unavailable("failed to load product", err)
	}

	res := db.Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&models.Like{})
	if res.Error != nil {
		return nil, httperr.Unavailable("failed to remove like", res.Error)
	}
	if res.RowsAffected > 0 {
		return &ToggleResult{Added: false}, nil
	}

	like := models.Like{CustomerID: customerID, ProductID: productID}
	if err := db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent toggle added it first; flip it off.
			del := db.Where("customer_id = ? AND product_id = ?", customerID, productID).
				Delete(&models.Like{})
			if del.Error != nil {
				return nil, httperr.Unavailable("failed to remove like", del.Error)
			}
			return &ToggleResult{Added: false}, nil
		}
		return nil, httperr.Unavailable("failed to add like", err)
	}
	return &ToggleResult{Added: true, Like: &like}, nil
}

// -------- Handlers --------

// POST /likes
func ToggleLike(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleLikeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.InvalidArgument("product_id is required"))
			return
		}

		result, appErr := Toggle(db, middleware.CustomerID(c), req.ProductID)
		if appErr != nil {
			httperr.Respond(c, appErr)
			return
		}
		if result.Added {
			c.JSON(http.StatusCreated, result.Like)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GET /likes?product=&customer=
func ListLikes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, appErr := parseFilter(c)
		if appErr != nil {
			httperr.Respond(c, appErr)
			return
		}
		if filter.Empty() {
			httperr.Respond(c, httperr.InvalidArgument("Provide a product or customer filter"))
			return
		}

		var likes []models.Like
		if err := filter.Apply(db).Order("created_at").Find(&likes).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to list likes", err))
			return
		}
		c.JSON(http.StatusOK, likes)
	}
}

func parseFilter(c *gin.Context) (LikeFilter, *httperr.Error) {
	var filter LikeFilter
	if raw := c.Query("product"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, httperr.InvalidArgument("Invalid product filter")
		}
		v := uint(id)
		filter.ProductID = &v
	}
	if raw := c.Query("customer"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, httperr.InvalidArgument("Invalid customer filter")
		}
		v := uint(id)
		filter.CustomerID = &v
	}
	return filter, nil
}
