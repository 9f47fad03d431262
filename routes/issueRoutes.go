package routes

import (
	"github.com/gin-gonic/gin"

	"wakeupvoter-be/controllers"
)

// IssueRoutes sets up the issue, analytics and fact check routes
func IssueRoutes(r *gin.Engine, issues *controllers.IssueController, factChecks *controllers.FactCheckController) {
	group := r.Group("/api/issues")
	{
		group.GET("", issues.List)
		group.POST("", issues.Create)
		group.GET("/analytics", issues.Analytics)
		group.GET("/:id", issues.GetByID)
	}

	fc := r.Group("/api/fact-checks")
	{
		fc.GET("", factChecks.List)
		fc.POST("", factChecks.Create)
	}
}
