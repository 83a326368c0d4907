package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/day-cohort-70/Bangazon-API-team-3/auth"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/register", auth.Register(db)) // POST /register
	r.POST("/login", auth.Login(db))       // POST /login
}
