package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gamer-hub/api-go/middleware"
	"github.com/gamer-hub/api-go/presence"
	"github.com/gamer-hub/api-go/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, tracker *presence.Tracker) {
	store := storage.New(db)

	// Initialize controllers
	authController := controllers.NewAuthController(store)
	userController := controllers.NewUserController(store, tracker)
	gameController := controllers.NewGameController(store)
	communityController := controllers.NewCommunityController(store)
	postController := controllers.NewPostController(store)
	friendController := controllers.NewFriendController(store)
	libraryController := controllers.NewLibraryController(store)
	notificationController := controllers.NewNotificationController(store)
	tournamentController := controllers.NewTournamentController(store)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
		public.GET("/check-username/:username", authController.UsernameCheck)
		public.GET("/check-email/:email", authController.EmailCheck)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		// Setup other routes within the protected group
		SetupUserRoutes(protected, userController)
		SetupGameRoutes(protected, gameController)
		SetupCommunityRoutes(protected, communityController)
		SetupPostRoutes(protected, postController)
		SetupFriendRoutes(protected, friendController)
		SetupLibraryRoutes(protected, libraryController)
		SetupNotificationRoutes(protected, notificationController)
		SetupTournamentRoutes(protected, tournamentController)
		SetupUploadRoutes(protected, uploadController)
	}
}
