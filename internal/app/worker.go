package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"videotube/internal/repo/inbox"
	"videotube/internal/repo/persistent"
	"videotube/internal/usecase"
	"videotube/pkg/cache"
	"videotube/pkg/config"
	"videotube/pkg/database"
	"videotube/pkg/logger"
	"videotube/pkg/queue"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Worker consumes notification tasks from RabbitMQ and fans them out to
// subscriber inboxes in Redis.
type Worker struct {
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client

	cancel context.CancelFunc
	done   chan error
}

func NewWorker(cfg *config.Config) (*Worker, error) {
	log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if cfg.RabbitMQHost == "" {
		return nil, errors.New("RABBITMQ_HOST is required for the notification worker")
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to Redis: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		_ = redisClient.Close()
		return nil, err
	}

	return &Worker{
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
	}, nil
}

func (w *Worker) Run() error {
	notificationUseCase := usecase.NewNotificationUseCase(
		inbox.NewNotificationInbox(w.redisClient),
		persistent.NewSubscriptionRepository(w.db),
		persistent.NewUserRepository(w.db),
		w.log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan error, 1)

	go func() {
		w.log.Info("Starting notification queue processor...")
		w.done <- w.queueClient.ConsumeNotificationTasks(ctx, func(ctx context.Context, task queue.NotificationTask) error {
			w.log.Info("[NOTIFICATION HANDLER] Received %s task for video %s", task.Type, task.VideoID)
			_, err := notificationUseCase.HandleTask(ctx, task)
			return err
		})
	}()

	return nil
}

// Wait blocks until a termination signal arrives or the consumer stops.
func (w *Worker) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		w.log.Info("Shutting down notification worker...")
	case err := <-w.done:
		if err != nil {
			w.log.Error("Notification consumer stopped: %v", err)
		}
		w.done <- err
	}
}

func (w *Worker) Shutdown() error {
	var consumeErr error
	if w.cancel != nil {
		w.cancel()
		consumeErr = <-w.done
		if errors.Is(consumeErr, context.Canceled) {
			consumeErr = nil
		}
	}

	if err := w.queueClient.Close(); err != nil {
		w.log.Error("Error closing RabbitMQ: %v", err)
	}

	if err := w.redisClient.Close(); err != nil {
		w.log.Error("Error closing Redis: %v", err)
	}

	sqlDB, err := w.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			w.log.Error("Error closing database: %v", err)
		}
	}

	w.log.Info("Worker exited")
	return consumeErr
}
