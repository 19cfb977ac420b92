package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"campusdrop-api/config"
	"campusdrop-api/controllers"
	"campusdrop-api/middleware"
	"campusdrop-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	friendController := controllers.NewFriendController(db)
	buildingController := controllers.NewBuildingController(db)
	questionController := controllers.NewQuestionController(db)
	achievementController := controllers.NewAchievementController(db)
	shopController := controllers.NewShopController(db)
	fountainController := controllers.NewFountainController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Legacy friend endpoints kept at the root for the existing frontend.
	// POST-only, empty-data responses on failure.
	friends := r.Group("/friends")
	friends.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		friends.POST("/allFriends", friendController.AllFriends)
		friends.POST("/allPending", friendController.AllPending)
		friends.POST("/request", friendController.RequestFriend)
	}

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited against credential stuffing)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/verify-code", authController.VerifyCode)
		auth.POST("/resend-code", authController.ResendVerificationCode)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/data", userController.GetData)
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}

		// Friend routes
		friendsV1 := protected.Group("/friends")
		{
			friendsV1.POST("/accept", friendController.AcceptFriend)
			friendsV1.POST("/reject", friendController.RejectFriend)
			friendsV1.DELETE("/remove", friendController.RemoveFriend)
		}

		// Building routes
		buildings := protected.Group("/buildings")
		{
			buildings.GET("/", buildingController.GetBuildings)
			buildings.GET("/:id", buildingController.GetBuilding)
			buildings.GET("/:id/leaderboard", buildingController.GetLeaderboard)
			buildings.POST("/", middleware.StaffOnly(), buildingController.CreateBuilding)
			buildings.POST("/:id/floors", middleware.StaffOnly(), buildingController.AddFloor)
		}

		// Quiz routes
		questions := protected.Group("/questions")
		{
			questions.GET("/next", questionController.GetNextQuestion)
			questions.POST("/answer", questionController.SubmitAnswer)
			questions.POST("/", middleware.StaffOnly(), questionController.CreateQuestion)
		}

		// Achievement routes
		achievements := protected.Group("/achievements")
		{
			achievements.GET("/", achievementController.GetAchievements)
			achievements.GET("/mine", achievementController.GetUserAchievements)
			achievements.POST("/grant", achievementController.GrantAchievement)
			achievements.POST("/", middleware.StaffOnly(), achievementController.CreateAchievement)
		}

		// Shop routes
		shop := protected.Group("/shop")
		{
			shop.GET("/items", shopController.GetItems)
			shop.GET("/inventory", shopController.GetInventory)
			shop.POST("/purchase", shopController.PurchaseItem)
			shop.POST("/items", middleware.StaffOnly(), shopController.CreateItem)
		}

		// Fountain routes
		fountains := protected.Group("/fountains")
		{
			fountains.GET("/", fountainController.GetFountains)
			fountains.POST("/fill", fountainController.FillBottle)
			fountains.POST("/", middleware.StaffOnly(), fountainController.CreateFountain)
		}
	}
}
