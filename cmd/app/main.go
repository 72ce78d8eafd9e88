package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/gadgetpress/internal/blogservice"
	"github.com/sushihentaime/gadgetpress/internal/common"
	"github.com/sushihentaime/gadgetpress/internal/mediahost"
	"github.com/sushihentaime/gadgetpress/internal/userservice"
)

// mediaStore is the media host as the HTTP layer sees it.
type mediaStore interface {
	Upload(ctx context.Context, data []byte) (*mediahost.Asset, error)
	Delete(ctx context.Context, ref string) error
}

type application struct {
	config      *Config
	logger      *slog.Logger
	userService *userservice.UserService
	blogService *blogservice.BlogService
	media       mediaStore
	limiter     *rateLimiter
}

func newLogger(env string) *slog.Logger {
	if env == envProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	logger := newLogger("")

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger = newLogger(cfg.Environment)

	dsn := common.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := common.NewDB(dsn, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBMaxIdleTime)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	m, err := common.Migrate(dsn)
	if err != nil {
		logger.Error("failed to migrate the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	m.Close()

	mediaClient, err := mediahost.New(mediahost.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
		Folder:    cfg.S3Folder,
	})
	if err != nil {
		logger.Error("failed to configure the media host", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// a nil *mediahost.Client must not end up inside a non-nil interface
	var (
		media     mediaStore
		blogMedia blogservice.MediaHost
	)
	if mediaClient != nil {
		media, blogMedia = mediaClient, mediaClient
	} else {
		logger.Warn("media host not configured, image uploads are disabled")
	}

	userService, err := userservice.NewUserService(db, userservice.AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		logger.Error("failed to create the user service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var limiter *rateLimiter
	if cfg.RateLimitEnabled {
		limiter = newRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		defer limiter.stop()
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userService,
		blogService: blogservice.NewBlogService(db, common.NewCache(time.Minute, 10*time.Minute), blogMedia, logger),
		media:       media,
		limiter:     limiter,
	}

	err = app.serve()
	if err != nil {
		logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
