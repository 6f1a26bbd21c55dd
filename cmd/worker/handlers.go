package main

import (
	"github.com/hibiken/asynq"

	articleJob "blog-backend/internal/domains/article/job"
	articleModel "blog-backend/internal/domains/article/model"
	"blog-backend/internal/infrastructure/storage"
)

// handlerRegistry collects all task handlers so server setup stays
// declarative.
type handlerRegistry struct {
	deleteImage *articleJob.DeleteImageHandler
}

func newHandlerRegistry(minioStorage *storage.MinIOStorage) *handlerRegistry {
	return &handlerRegistry{
		deleteImage: articleJob.NewDeleteImageHandler(minioStorage),
	}
}

func (r *handlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(articleModel.TaskDeleteImage, r.deleteImage)
}
