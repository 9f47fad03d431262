package routes

import (
	"github.com/gin-gonic/gin"

	"wakeupvoter-be/controllers"
)

// PromiseRoutes sets up promises, parties, leaders and promise feedback
func PromiseRoutes(r *gin.Engine, promises *controllers.PromiseController, feedback *controllers.PromiseFeedbackController) {
	group := r.Group("/api/promises")
	{
		group.GET("", promises.List)
		group.POST("", promises.Create)
		group.GET("/:id", promises.GetByID)
	}

	parties := r.Group("/api/parties")
	{
		parties.GET("", promises.ListParties)
		parties.POST("", promises.CreateParty)
	}

	leaders := r.Group("/api/leaders")
	{
		leaders.GET("", promises.ListLeaders)
		leaders.POST("", promises.CreateLeader)
	}

	votes := r.Group("/api/promise-votes")
	{
		votes.GET("", feedback.ListVotes)
		votes.POST("", feedback.CastVote)
	}

	comments := r.Group("/api/promise-comments")
	{
		comments.GET("", feedback.ListComments)
		comments.POST("", feedback.CreateComment)
		comments.PUT("/:id", feedback.UpdateComment)
	}

	factChecks := r.Group("/api/promise-fact-checks")
	{
		factChecks.GET("", feedback.ListFactChecks)
		factChecks.POST("", feedback.CreateFactCheck)
	}

	reminders := r.Group("/api/promise-reminders")
	{
		reminders.GET("", feedback.ListReminders)
		reminders.POST("", feedback.CreateReminder)
		reminders.PUT("/:id", feedback.UpdateReminder)
	}
}
