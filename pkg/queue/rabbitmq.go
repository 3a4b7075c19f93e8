package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"videotube/pkg/config"
	"videotube/pkg/logger"
	"videotube/pkg/metrics"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationQueueName = "notification_queue"
	NotificationExchange  = "notifications"

	NotificationDeadLetterExchange = "notifications.dlx"
	NotificationDeadLetterQueue    = "notification_queue.dead"

	RoutingKeyVideoPublished = "video_published"

	maxPriority      = 10
	consumerPrefetch = 16
)

// NotificationTask is the message body consumed by the notification worker.
type NotificationTask struct {
	Type      string    `json:"type"`
	VideoID   string    `json:"video_id"`
	ChannelID string    `json:"channel_id"`
	Title     string    `json:"title"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	port, err := strconv.Atoi(cfg.RabbitMQPort)
	if err != nil {
		return nil, fmt.Errorf("invalid RabbitMQ port %q: %w", cfg.RabbitMQPort, err)
	}
	uri := amqp.URI{
		Scheme:   "amqp",
		Host:     cfg.RabbitMQHost,
		Port:     port,
		Username: cfg.RabbitMQUser,
		Password: cfg.RabbitMQPassword,
		Vhost:    "/",
	}

	conn, err := amqp.Dial(uri.String())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

// declareTopology sets up the notification exchange and its priority queue.
// Messages rejected without requeue are dead-lettered to NotificationDeadLetterQueue.
func declareTopology(ch *amqp.Channel) error {
	for _, exchange := range []string{NotificationExchange, NotificationDeadLetterExchange} {
		if err := ch.ExchangeDeclare(exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
		}
	}

	if _, err := ch.QueueDeclare(NotificationDeadLetterQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", NotificationDeadLetterQueue, err)
	}
	if err := ch.QueueBind(NotificationDeadLetterQueue, RoutingKeyVideoPublished, NotificationDeadLetterExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", NotificationDeadLetterQueue, err)
	}

	_, err := ch.QueueDeclare(NotificationQueueName, true, false, false, false, amqp.Table{
		"x-max-priority":         maxPriority,
		"x-dead-letter-exchange": NotificationDeadLetterExchange,
	})
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", NotificationQueueName, err)
	}
	if err := ch.QueueBind(NotificationQueueName, RoutingKeyVideoPublished, NotificationExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", NotificationQueueName, err)
	}
	return nil
}

func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		errs = append(errs, c.channel.Close())
	}
	if c.conn != nil {
		errs = append(errs, c.conn.Close())
	}
	return errors.Join(errs...)
}

// PublishNotification publishes a task with its priority clamped to 0..maxPriority.
func (c *Client) PublishNotification(ctx context.Context, routingKey string, task NotificationTask) error {
	priority := min(max(task.Priority, 0), maxPriority)

	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	err = c.channel.PublishWithContext(
		ctx,
		NotificationExchange, // exchange
		routingKey,           // routing key
		false,                // mandatory
		false,                // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Priority:     uint8(priority),
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		metrics.NotificationsPublished.WithLabelValues(task.Type, "error").Inc()
		c.logger.Error("[RABBITMQ] Failed to publish message to exchange=%s, routing_key=%s: %v", NotificationExchange, routingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	metrics.NotificationsPublished.WithLabelValues(task.Type, "ok").Inc()
	c.logger.Debug("[RABBITMQ] Published notification task to exchange=%s, routing_key=%s: %s", NotificationExchange, routingKey, string(body))
	return nil
}

// PublishVideoPublished announces a newly published video to the channel's subscribers.
func (c *Client) PublishVideoPublished(ctx context.Context, videoID, channelID, title string) error {
	return c.PublishNotification(ctx, RoutingKeyVideoPublished, NotificationTask{
		Type:      RoutingKeyVideoPublished,
		VideoID:   videoID,
		ChannelID: channelID,
		Title:     title,
		Priority:  5,
		CreatedAt: time.Now().UTC(),
	})
}

// ConsumeNotificationTasks delivers queued tasks to handler until ctx ends or
// the channel closes. Undecodable messages are dead-lettered; a failed task is
// requeued once and dead-lettered on its second failure.
func (c *Client) ConsumeNotificationTasks(ctx context.Context, handler func(ctx context.Context, task NotificationTask) error) error {
	if err := c.channel.Qos(consumerPrefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := c.channel.ConsumeWithContext(
		ctx,
		NotificationQueueName, // queue
		"",                    // consumer
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from notification queue: %s", NotificationQueueName)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("notification queue %s closed", NotificationQueueName)
			}

			var task NotificationTask
			if err := json.Unmarshal(msg.Body, &task); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal notification task: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false)
				continue
			}

			if err := handler(ctx, task); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed to process %s task for video %s: %v", task.Type, task.VideoID, err)
				msg.Nack(false, !msg.Redelivered)
				continue
			}

			msg.Ack(false)
		}
	}
}
