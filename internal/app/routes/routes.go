package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thequad/api/internal/app/controllers"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/middleware"
	"github.com/thequad/api/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	lostFoundController *controllers.LostFoundController,
	teamController *controllers.TeamController,
	crewController *controllers.CrewController,
	mentorshipController *controllers.MentorshipController,
	alertController *controllers.AlertController,
	chatController *controllers.ChatController,
	dashboardController *controllers.DashboardController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetMyProfile)
			users.PUT("/me", userController.UpdateMyProfile)
			users.PUT("/me/avatar", userController.UpdateMyAvatar)
			users.GET("/:id", userController.GetUserByID)
		}

		lostItems := authenticated.Group("/lost-items")
		{
			lostItems.GET("", lostFoundController.ListItems)
			lostItems.POST("", lostFoundController.CreateItem)
			lostItems.DELETE("/:id", lostFoundController.DeleteItem)
		}

		teams := authenticated.Group("/teams")
		{
			teams.GET("", teamController.ListTeams)
			teams.POST("", teamController.CreateTeam)
			teams.DELETE("/:id", teamController.DeleteTeam)
			teams.POST("/:id/join", teamController.JoinTeam)
			teams.GET("/:id/requests", teamController.ListJoinRequests)
		}

		crewCalls := authenticated.Group("/crew-calls")
		{
			crewCalls.GET("", crewController.ListCrewCalls)
			crewCalls.POST("", crewController.CreateCrewCall)
			crewCalls.PUT("/:id", crewController.UpdateCrewCall)
			crewCalls.PATCH("/:id/status", crewController.UpdateCrewCallStatus)
			crewCalls.DELETE("/:id", crewController.DeleteCrewCall)
			crewCalls.POST("/:id/apply", crewController.ApplyToCrewCall)
			crewCalls.GET("/:id/applications", crewController.ListApplications)
		}

		mentorship := authenticated.Group("/mentorship")
		{
			mentorship.GET("/slots", mentorshipController.ListSlots)
			mentorship.POST("/slots", mentorshipController.CreateSlot)
			mentorship.DELETE("/slots/:id", mentorshipController.DeleteSlot)
			mentorship.GET("/my-slots", mentorshipController.MySlots)
			mentorship.GET("/my-bookings", mentorshipController.MyBookings)
			mentorship.POST("/slots/:id/book", mentorshipController.BookSlot)
			mentorship.POST("/slots/:id/accept", mentorshipController.AcceptBooking)
			mentorship.POST("/slots/:id/decline", mentorshipController.DeclineBooking)
			mentorship.POST("/slots/:id/complete", mentorshipController.CompleteSession)
		}

		alerts := authenticated.Group("/alerts")
		{
			alerts.GET("", alertController.ListAlerts)
			alerts.POST("", alertController.CreateAlert)
			alerts.DELETE("/:id", alertController.DeleteAlert)
		}

		chats := authenticated.Group("/chats")
		{
			chats.POST("", chatController.StartChat)
			chats.GET("", chatController.ListConversations)
			chats.GET("/:id/messages", chatController.GetMessages)
			chats.POST("/:id/messages", chatController.SendMessage)
			chats.POST("/:id/read", chatController.MarkRead)
			chats.GET("/:id/ws", wsHandler.HandleConnection)
		}

		dashboard := authenticated.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardController.GetStats)
			dashboard.GET("/feed", dashboardController.GetFeed)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
