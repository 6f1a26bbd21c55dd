package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/article/model"
	"blog-backend/internal/infrastructure/storage"
)

// DeleteImageHandler removes the stored image object of a deleted
// article.
type DeleteImageHandler struct {
	storage *storage.MinIOStorage
}

func NewDeleteImageHandler(minioStorage *storage.MinIOStorage) *DeleteImageHandler {
	return &DeleteImageHandler{storage: minioStorage}
}

func (h *DeleteImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.DeleteImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	key := h.storage.KeyFromURL(payload.ImagePath)
	if key == "" {
		// URL points outside our bucket, nothing to clean.
		log.Warn().Str("image_path", payload.ImagePath).Msg("skipping image outside bucket")
		return nil
	}

	if err := h.storage.Remove(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete article image")
		return fmt.Errorf("delete image: %w", err)
	}

	log.Info().Str("key", key).Msg("article image deleted")
	return nil
}
