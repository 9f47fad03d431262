package routes

import (
	"github.com/gin-gonic/gin"

	"wakeupvoter-be/controllers"
	"wakeupvoter-be/middlewares"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	group := r.Group("/api/auth")
	{
		group.POST("/register", auth.Register)
		group.POST("/login", auth.Login)
		group.GET("/me", middlewares.AuthMiddleware(), auth.Me)
		group.POST("/logout", auth.Logout)
	}
}
