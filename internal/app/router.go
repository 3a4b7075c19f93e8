package app

import (
	"net/http"
	"time"

	apiHTTP "videotube/internal/controller/http"
	"videotube/internal/repo/inbox"
	"videotube/internal/repo/persistent"
	"videotube/internal/usecase"
	"videotube/pkg/config"
	"videotube/pkg/jwt"
	"videotube/pkg/logger"
	"videotube/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "videotube/docs" // Swagger docs
)

// Dependencies are the connected backends the router is built on. Redis and
// Notifier may be nil; without Redis requests are not rate limited and
// notification inboxes stay empty.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       *gorm.DB
	Redis    *redis.Client
	Media    usecase.MediaStore
	Notifier usecase.Notifier
	JWT      *jwt.Service
}

// NewRouter wires repositories, use cases and handlers into a gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger

	// Initialize repositories
	userRepo := persistent.NewUserRepository(deps.DB)
	videoRepo := persistent.NewVideoRepository(deps.DB)
	commentRepo := persistent.NewCommentRepository(deps.DB)
	likeRepo := persistent.NewLikeRepository(deps.DB)
	subscriptionRepo := persistent.NewSubscriptionRepository(deps.DB)
	playlistRepo := persistent.NewPlaylistRepository(deps.DB)
	tweetRepo := persistent.NewTweetRepository(deps.DB)
	historyRepo := persistent.NewWatchHistoryRepository(deps.DB)

	// a nil client must not become a non-nil inbox
	var notificationInbox inbox.NotificationInbox
	if deps.Redis != nil {
		notificationInbox = inbox.NewNotificationInbox(deps.Redis)
	}

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(userRepo, deps.JWT, deps.Media, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, deps.Media, deps.Notifier, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, log)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, userRepo, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo, log)
	historyUseCase := usecase.NewHistoryUseCase(historyRepo, videoRepo, log)
	dashboardUseCase := usecase.NewDashboardUseCase(videoRepo, subscriptionRepo, log)
	notificationUseCase := usecase.NewNotificationUseCase(notificationInbox, subscriptionRepo, userRepo, log)

	// Initialize HTTP handlers
	apiHTTP.RegisterValidators()
	uploads := apiHTTP.Uploads{Dir: cfg.UploadTempDir}
	pager := apiHTTP.Pager{MaxLimit: cfg.MaxPageSize}
	cookies := apiHTTP.CookieOptions{
		Secure:        cfg.CookieSecure,
		AccessMaxAge:  cfg.AccessTokenExpiry,
		RefreshMaxAge: cfg.RefreshTokenExpiry,
	}

	userHandler := apiHTTP.NewUserHandler(userUseCase, uploads, cookies, log)
	videoHandler := apiHTTP.NewVideoHandler(videoUseCase, uploads, pager, log)
	commentHandler := apiHTTP.NewCommentHandler(commentUseCase, pager, log)
	likeHandler := apiHTTP.NewLikeHandler(likeUseCase, pager, log)
	subscriptionHandler := apiHTTP.NewSubscriptionHandler(subscriptionUseCase, pager, log)
	playlistHandler := apiHTTP.NewPlaylistHandler(playlistUseCase, pager, log)
	tweetHandler := apiHTTP.NewTweetHandler(tweetUseCase, pager, log)
	historyHandler := apiHTTP.NewHistoryHandler(historyUseCase, pager, log)
	dashboardHandler := apiHTTP.NewDashboardHandler(dashboardUseCase, pager, log)
	notificationHandler := apiHTTP.NewNotificationHandler(notificationUseCase, pager, cfg.CORSAllowedOrigins, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
	}))
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		users := api.Group("/users")
		users.Use(middleware.RateLimitMiddleware(deps.Redis, cfg.RateLimitPerMinute, time.Minute))
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/refresh-token", userHandler.RefreshToken)

		// Protected routes
		protected := api.Group("")
		protected.Use(
			middleware.AuthMiddleware(deps.JWT, userUseCase),
			middleware.RateLimitMiddleware(deps.Redis, cfg.RateLimitPerMinute, time.Minute),
			apiHTTP.ValidIDParams(),
		)

		account := protected.Group("/users")
		{
			account.POST("/logout", userHandler.Logout)
			account.POST("/change-password", userHandler.ChangePassword)
			account.GET("/current-user", userHandler.CurrentUser)
			account.PATCH("/update-account", userHandler.UpdateAccount)
			account.PATCH("/avatar", userHandler.UpdateAvatar)
			account.PATCH("/cover-image", userHandler.UpdateCoverImage)
			account.DELETE("/delete-user", userHandler.DeleteUser)
			account.GET("/channel/:username", userHandler.ChannelProfile)
			account.GET("/history", historyHandler.ListHistory)
		}

		videos := protected.Group("/videos")
		{
			videos.GET("", videoHandler.ListVideos)
			videos.POST("", videoHandler.PublishVideo)
			videos.GET("/:videoId", videoHandler.GetVideo)
			videos.PATCH("/:videoId", videoHandler.UpdateVideo)
			videos.DELETE("/:videoId", videoHandler.DeleteVideo)
			videos.PATCH("/thumbnail/:videoId", videoHandler.UpdateThumbnail)
			videos.PATCH("/toggle/:videoId", videoHandler.TogglePublish)
		}

		comments := protected.Group("/comments")
		{
			comments.GET("/:videoId", commentHandler.ListComments)
			comments.POST("/:videoId", commentHandler.AddComment)
			comments.PATCH("/c/:commentId", commentHandler.UpdateComment)
			comments.DELETE("/c/:commentId", commentHandler.DeleteComment)
		}

		likes := protected.Group("/likes")
		{
			likes.POST("/toggle/v/:videoId", likeHandler.ToggleVideoLike)
			likes.POST("/toggle/c/:commentId", likeHandler.ToggleCommentLike)
			likes.POST("/toggle/t/:tweetId", likeHandler.ToggleTweetLike)
			likes.GET("/videos", likeHandler.ListLikedVideos)
		}

		subscriptions := protected.Group("/subscriptions")
		{
			subscriptions.POST("/c/:channelId", subscriptionHandler.ToggleSubscription)
			subscriptions.GET("/c/:channelId", subscriptionHandler.ListSubscribers)
			subscriptions.GET("/u/:subscriberId", subscriptionHandler.ListSubscribedChannels)
		}

		playlists := protected.Group("/playlists")
		{
			playlists.POST("", playlistHandler.CreatePlaylist)
			playlists.GET("/user/:userId", playlistHandler.ListUserPlaylists)
			playlists.GET("/:playlistId", playlistHandler.GetPlaylist)
			playlists.PATCH("/:playlistId", playlistHandler.UpdatePlaylist)
			playlists.DELETE("/:playlistId", playlistHandler.DeletePlaylist)
			playlists.PATCH("/add/:videoId/:playlistId", playlistHandler.AddVideo)
			playlists.PATCH("/remove/:videoId/:playlistId", playlistHandler.RemoveVideo)
		}

		tweets := protected.Group("/tweets")
		{
			tweets.POST("", tweetHandler.CreateTweet)
			tweets.GET("/user/:userId", tweetHandler.ListUserTweets)
			tweets.PATCH("/:tweetId", tweetHandler.UpdateTweet)
			tweets.DELETE("/:tweetId", tweetHandler.DeleteTweet)
		}

		history := protected.Group("/history")
		{
			history.POST("/:videoId", historyHandler.AddToHistory)
			history.GET("", historyHandler.ListHistory)
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.ChannelStats)
			dashboard.GET("/videos", dashboardHandler.ChannelVideos)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/ws", notificationHandler.StreamNotifications)
		}
	}

	return r
}
