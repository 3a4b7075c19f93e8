package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"videotube/internal/entity"
	"videotube/internal/repo/persistent"
	"videotube/pkg/config"
	"videotube/pkg/database"
	"videotube/pkg/logger"
	"videotube/pkg/s3"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	var videoPath string
	flag.StringVar(&videoPath, "video", "", "Path to a sample video file; videos are skipped when empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	s := &seeder{
		users:         persistent.NewUserRepository(db),
		videos:        persistent.NewVideoRepository(db),
		subscriptions: persistent.NewSubscriptionRepository(db),
		tweets:        persistent.NewTweetRepository(db),
		playlists:     persistent.NewPlaylistRepository(db),
		media:         s3Client,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		tempDir:       cfg.UploadTempDir,
		videoPath:     videoPath,
		log:           log,
	}

	if err := s.run(context.Background()); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

type seeder struct {
	users         persistent.UserRepository
	videos        persistent.VideoRepository
	subscriptions persistent.SubscriptionRepository
	tweets        persistent.TweetRepository
	playlists     persistent.PlaylistRepository
	media         *s3.Client
	httpClient    *http.Client
	tempDir       string
	videoPath     string
	log           *logger.Logger
}

func (s *seeder) run(ctx context.Context) error {
	testUsers := []struct {
		email    string
		username string
		fullName string
		password string
	}{
		{"alice@test.com", "alice", "Alice Archer", "password123"},
		{"bob@test.com", "bob", "Bob Baker", "password123"},
		{"charlie@test.com", "charlie", "Charlie Cole", "password123"},
		{"diana@test.com", "diana", "Diana Dunn", "password123"},
		{"eve@test.com", "eve", "Eve Evans", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))
	videoIDs := make(map[string][]string, len(testUsers))

	for _, userData := range testUsers {
		existing, err := s.users.GetByUsernameOrEmail(ctx, userData.username, userData.email)
		if err == nil {
			s.log.Info("User %s already exists, skipping", existing.Username)
			userIDs = append(userIDs, existing.ID)
			continue
		}
		if !errors.Is(err, persistent.ErrNotFound) {
			return fmt.Errorf("failed to look up user %s: %w", userData.username, err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		avatar, err := s.uploadCatImage(ctx, "Hi, I am "+userData.fullName)
		if err != nil {
			s.log.Error("Failed to upload avatar for %s: %v", userData.username, err)
			continue
		}

		user := &entity.User{
			Email:    userData.email,
			Username: userData.username,
			FullName: userData.fullName,
			Avatar:   avatar,
			Password: string(hashedPassword),
		}
		if err := s.users.Create(ctx, user); err != nil {
			s.log.Error("Failed to create user %s: %v", user.Username, err)
			continue
		}

		s.log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)

		tweet := &entity.Tweet{OwnerID: user.ID, Content: fmt.Sprintf("Hello from %s!", user.FullName)}
		if err := s.tweets.Create(ctx, tweet); err != nil {
			s.log.Error("Failed to create tweet for %s: %v", user.Username, err)
		}

		if s.videoPath == "" {
			continue
		}
		videosCount := 2 + (len(userIDs) % 2)
		s.log.Info("Creating %d videos for user %s", videosCount, user.Username)
		for i := 0; i < videosCount; i++ {
			video, err := s.createVideo(ctx, user, i)
			if err != nil {
				s.log.Error("Failed to create video %d for user %s: %v", i+1, user.Username, err)
				continue
			}
			videoIDs[user.ID] = append(videoIDs[user.ID], video.ID)
		}
	}

	if s.videoPath == "" {
		s.log.Warn("No -video given, skipped videos and playlists")
	}

	// every user follows the users created after it
	for i := 0; i < len(userIDs); i++ {
		for j := i + 1; j < len(userIDs); j++ {
			err := s.subscriptions.Create(ctx, userIDs[i], userIDs[j])
			if err != nil && !errors.Is(err, persistent.ErrDuplicate) {
				s.log.Error("Failed to create subscription: %v", err)
			}
		}
	}
	s.log.Info("Created test subscriptions")

	for i, userID := range userIDs {
		next := userIDs[(i+1)%len(userIDs)]
		if len(videoIDs[next]) == 0 {
			continue
		}
		playlist := &entity.Playlist{OwnerID: userID, Name: "Favourites", Description: "Seeded favourites"}
		if err := s.playlists.Create(ctx, playlist); err != nil {
			if !errors.Is(err, persistent.ErrDuplicate) {
				s.log.Error("Failed to create playlist: %v", err)
			}
			continue
		}
		for _, videoID := range videoIDs[next] {
			if err := s.playlists.AddVideo(ctx, playlist.ID, videoID); err != nil {
				s.log.Error("Failed to add video to playlist: %v", err)
			}
		}
	}

	return nil
}

func (s *seeder) createVideo(ctx context.Context, owner *entity.User, index int) (*entity.Video, error) {
	// Upload removes its input, so every video gets its own copy.
	local, err := s.copyToTemp(s.videoPath)
	if err != nil {
		return nil, err
	}
	videoFile, err := s.media.Upload(ctx, local, s3.ResourceVideo)
	if err != nil {
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}

	thumbnail, err := s.uploadCatImage(ctx, fmt.Sprintf("%s #%d", owner.Username, index+1))
	if err != nil {
		return nil, err
	}

	video := &entity.Video{
		OwnerID:     owner.ID,
		Title:       fmt.Sprintf("Cat Video #%d by %s", index+1, owner.Username),
		Description: fmt.Sprintf("A seeded video with a CATAAS thumbnail. Video #%d", index+1),
		VideoFile:   videoFile.URL,
		Thumbnail:   thumbnail,
		Duration:    videoFile.Duration,
		IsPublished: true,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	s.log.Info("Created video: %s by %s", video.Title, owner.Username)
	return video, nil
}

// uploadCatImage fetches an image from CATAAS and stores it as an image object.
func (s *seeder) uploadCatImage(ctx context.Context, caption string) (string, error) {
	cataasURL := "https://cataas.com/cat/says/" + url.PathEscape(caption)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cataasURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch cat image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	file, err := os.CreateTemp(s.tempDir, "seed-*.jpg")
	if err != nil {
		return "", err
	}
	written, err := io.Copy(file, resp.Body)
	file.Close()
	if err != nil || written == 0 {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to read image data: %v", err)
	}

	result, err := s.media.Upload(ctx, file.Name(), s3.ResourceImage)
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}
	return result.URL, nil
}

func (s *seeder) copyToTemp(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open sample video: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.tempDir, "seed-*"+filepath.Ext(path))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to copy sample video: %w", err)
	}
	return dst.Name(), nil
}
