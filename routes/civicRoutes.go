package routes

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"wakeupvoter-be/controllers"
	"wakeupvoter-be/middlewares"
)

// CivicRoutes sets up reports, discussions, polls, accountability,
// reminders and distraction routes
func CivicRoutes(
	r *gin.Engine,
	reports *controllers.ReportController,
	discussions *controllers.DiscussionController,
	polls *controllers.PollController,
	accountability *controllers.AccountabilityController,
	reminders *controllers.ReminderController,
	distractions *controllers.DistractionController,
) {
	reportLimit := 5
	if raw := os.Getenv("REPORTS_PER_DAY"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			reportLimit = parsed
		}
	}

	rep := r.Group("/api/reports")
	{
		rep.GET("", reports.List)
		rep.POST("", middlewares.AuthMiddleware(), middlewares.ReportRateLimiter(reportLimit), reports.Create)
		rep.POST("/:id/upvote", middlewares.AuthMiddleware(), reports.Upvote)
	}

	disc := r.Group("/api/discussions")
	{
		disc.GET("", discussions.List)
		disc.POST("", discussions.Create)
		disc.PUT("/:id", discussions.Update)
	}

	poll := r.Group("/api/polls")
	{
		poll.GET("", polls.List)
		poll.POST("", polls.Create)
		poll.PUT("/:id", polls.Update)
	}
	r.POST("/api/poll-votes", polls.Vote)

	acc := r.Group("/api/accountability")
	{
		acc.GET("", accountability.List)
		acc.POST("", accountability.Create)
		acc.PUT("/:id", accountability.Update)
	}

	rem := r.Group("/api/reminders")
	{
		rem.GET("", reminders.List)
		rem.POST("", reminders.Create)
		rem.PUT("/:id", reminders.Update)
	}

	dist := r.Group("/api/distraction")
	{
		dist.GET("", distractions.List)
		dist.POST("", distractions.Create)
		dist.PUT("/:id", distractions.Update)
	}
}
