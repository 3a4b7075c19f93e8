package main

import (
	"os"

	"videotube/internal/app"
	"videotube/pkg/config"

	"github.com/gin-gonic/gin"
)

// @title           VideoTube API
// @version         1.0
// @description     Video sharing backend: videos, comments, likes, subscriptions, playlists, tweets, watch history and channel dashboards.

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token. The accessToken cookie is accepted too.

func main() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
