package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/anhthuvo/mobileAppBE/internal/core/auth"
	"github.com/anhthuvo/mobileAppBE/internal/core/blob"
	"github.com/anhthuvo/mobileAppBE/internal/core/cache"
	"github.com/anhthuvo/mobileAppBE/internal/core/config"
	"github.com/anhthuvo/mobileAppBE/internal/core/database"
	"github.com/anhthuvo/mobileAppBE/internal/core/logger"
	"github.com/anhthuvo/mobileAppBE/internal/core/server"
	"github.com/anhthuvo/mobileAppBE/internal/domain"
	"github.com/anhthuvo/mobileAppBE/internal/repo"
	"github.com/anhthuvo/mobileAppBE/internal/transport/http/handler"
	"github.com/anhthuvo/mobileAppBE/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Product{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	var rdb *cache.Cache
	if cfg.Redis.Addr != "" {
		rdb = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	var images blob.Store
	if cfg.Blob.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		store, err := blob.Connect(ctx, cfg.Blob.URL, cfg.Blob.Bucket)
		cancel()
		if err != nil {
			log.Fatal("blob store connect", zap.Error(err))
		}
		defer store.Close()
		images = store
		log.Info("blob store connected", zap.String("bucket", cfg.Blob.Bucket))
	} else {
		log.Warn("no blob store configured, image endpoints disabled")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLHr) * time.Hour,
	}

	userRepo := repo.NewUserRepo(db)
	productRepo := repo.NewProductRepo(db)
	cacheTTL := time.Duration(cfg.Redis.TTLSec) * time.Second

	r := router.New(router.Deps{
		Log:     log,
		JWTer:   jwter,
		User:    handler.NewUserHandler(userRepo, jwter, log),
		Product: handler.NewProductHandler(productRepo, rdb, cacheTTL, log),
		Image:   handler.NewImageHandler(images, log),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	log.Info("api starting", zap.String("addr", addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
