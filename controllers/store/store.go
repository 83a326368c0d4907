package storeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/middleware"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type StoreSeller struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type StoreDocument struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Seller       StoreSeller `json:"seller"`
	ProductCount int64       `json:"product_count"`
}

// POST /stores
func CreateStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateStoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.InvalidArgument("name is required"))
			return
		}

		store := models.Store{
			Name:        req.Name,
			Description: req.Description,
			SellerID:    middleware.CustomerID(c),
		}
		if err := db.Create(&store).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to create store", err))
			return
		}
		c.JSON(http.StatusCreated, store)
	}
}

// GET /stores
func GetStores(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stores []models.Store
		if err := db.Preload("Seller").Order("id").Find(&stores).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to list stores", err))
			return
		}

		docs := make([]StoreDocument, 0, len(stores))
		for _, store := range stores {
			var count int64
			if err := db.Model(&models.Product{}).Where("store_id = ?", store.ID).
				Count(&count).Error; err != nil {
				httperr.Respond(c, httperr.Unavailable("failed to count products", err))
				return
			}
			docs = append(docs, StoreDocument{
				ID:          store.ID,
				Name:        store.Name,
				Description: store.Description,
				Seller: StoreSeller{
					ID:        store.Seller.ID,
					Username:  store.Seller.Username,
					Email:     store.Seller.Email,
					FirstName: store.Seller.FirstName,
					LastName:  store.Seller.LastName,
				},
				ProductCount: count,
			})
		}
		c.JSON(http.StatusOK, docs)
	}
}
