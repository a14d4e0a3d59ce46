package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/adhamyosry771-star/filex-design/controllers"
	"github.com/adhamyosry771-star/filex-design/middleware"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	userCtrl := controllers.NewUserController()
	requestCtrl := controllers.NewRequestController()
	messageCtrl := controllers.NewMessageController()
	bannerCtrl := controllers.NewBannerController()
	briefCtrl := controllers.NewBriefController()
	notificationCtrl := controllers.NewNotificationController()
	supportCtrl := controllers.NewSupportController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Public surface: landing page data and the forms anyone can submit.
	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/banners", bannerCtrl.GetActiveBanners)
	router.GET("/announcements", notificationCtrl.GetAnnouncements)
	router.POST("/messages", messageCtrl.SendMessage)
	router.POST("/briefs/refine", briefCtrl.RefineBrief)
	router.POST("/requests", middleware.OptionalAuthMiddleware(), requestCtrl.CreateRequest)
	router.GET("/auth/session", middleware.OptionalAuthMiddleware(), authCtrl.GetSession)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.BanCheckMiddleware())
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/profile/avatar", authCtrl.UpdateAvatar)
		auth.PATCH("/auth/preferences", authCtrl.UpdatePreferences)

		auth.GET("/requests", requestCtrl.GetUserRequests)
		auth.GET("/notifications", notificationCtrl.GetNotifications)
		auth.PATCH("/notifications/:id/read", notificationCtrl.MarkNotificationRead)

		auth.POST("/support/sessions", supportCtrl.OpenSession)
		auth.GET("/support/sessions/:id/messages", supportCtrl.GetSessionMessages)
		auth.POST("/support/sessions/:id/messages", supportCtrl.SendSessionMessage)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.BanCheckMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.DELETE("/users/:id", userCtrl.DeleteUser)
		admin.PATCH("/users/:id/ban", userCtrl.ToggleUserBan)

		admin.GET("/requests", requestCtrl.GetAllRequests)
		admin.PATCH("/requests/:id/status", requestCtrl.UpdateRequestStatus)

		admin.GET("/messages", messageCtrl.GetMessages)
		admin.PATCH("/messages/:id/read", messageCtrl.MarkMessageRead)

		admin.POST("/banners/upload", bannerCtrl.UploadBannerImage)
		admin.POST("/banners", bannerCtrl.AddBanner)
		admin.GET("/banners", bannerCtrl.GetAllBanners)
		admin.PATCH("/banners/:id/toggle", bannerCtrl.ToggleBannerStatus)
		admin.DELETE("/banners/:id", bannerCtrl.DeleteBanner)

		admin.POST("/announcements", notificationCtrl.CreateAnnouncement)

		admin.GET("/support/sessions", supportCtrl.GetAllSessions)
		admin.PATCH("/support/sessions/:id/close", supportCtrl.CloseSession)
	}

	router.Static("/uploads", "./uploads")
}
