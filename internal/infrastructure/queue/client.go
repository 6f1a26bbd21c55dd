package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"blog-backend/internal/domains/article/model"
)

// Client enqueues background tasks for the worker process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (c *Client) EnqueueDeleteImage(ctx context.Context, imagePath string) error {
	payload, err := json.Marshal(model.DeleteImagePayload{ImagePath: imagePath})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(model.TaskDeleteImage, payload)
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue("low"), asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("enqueue %s: %w", model.TaskDeleteImage, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
