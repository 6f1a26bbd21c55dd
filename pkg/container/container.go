package container

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/queue"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/identity"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"

	articleHandler "blog-backend/internal/domains/article/handler"
	articleRepo "blog-backend/internal/domains/article/repository"
	articleService "blog-backend/internal/domains/article/service"
	categoryHandler "blog-backend/internal/domains/category/handler"
	categoryRepo "blog-backend/internal/domains/category/repository"
	categoryService "blog-backend/internal/domains/category/service"
	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"
	"blog-backend/internal/domains/feed"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Queue      *queue.Client
	JWTManager *jwt.Manager
	Identity   identity.Provider

	ArticleRepo  articleRepo.ArticleRepository
	CategoryRepo categoryRepo.CategoryRepository
	CommentRepo  commentRepo.CommentRepository
	UserRepo     userRepo.UserRepository
	FeedRepo     feed.Repository

	ArticleService  articleService.ServiceInterface
	CategoryService categoryService.ServiceInterface
	CommentService  commentService.ServiceInterface
	UserService     userService.ServiceInterface
	FeedService     feed.ServiceInterface

	ArticleHandler  *articleHandler.ArticleHandler
	CategoryHandler *categoryHandler.CategoryHandler
	CommentHandler  *commentHandler.CommentHandler
	UserHandler     *userHandler.UserHandler
	FeedHandler     *feed.Handler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initIdentity()
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("env", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis is not critical at startup; services degrade to
	// cache-less operation.
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis connection failed (non-critical)")
		}
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage

	c.Queue = queue.NewClient(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		time.Duration(c.Config.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(c.Config.JWT.RefreshTokenExpiry)*time.Hour,
	)

	return nil
}

// initIdentity picks the caller-identity source. Static mode keeps
// the API usable while the auth frontend is unfinished; config
// validation refuses it in production.
func (c *Container) initIdentity() {
	if c.Config.Auth.Mode == "static" {
		staticID, err := uuid.Parse(c.Config.Auth.StaticUserID)
		if err != nil {
			staticID = uuid.Nil
		}
		log.Warn().Str("user_id", staticID.String()).Msg("auth disabled, using static identity")
		c.Identity = identity.NewStatic(staticID)
		return
	}
	c.Identity = identity.NewTokenProvider()
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ArticleRepo = articleRepo.NewPostgresArticleRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.FeedRepo = feed.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.ArticleService = articleService.NewArticleService(
		c.ArticleRepo,
		c.Storage,
		storage.NewImageValidator(),
		c.Queue,
	)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.Cache)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.FeedService = feed.NewFeedService(c.FeedRepo)
}

func (c *Container) initHandlers() {
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService, c.Identity)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService, c.Identity)
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.Identity)
	c.FeedHandler = feed.NewHandler(c.FeedService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close queue client")
		}
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis")
			}
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
