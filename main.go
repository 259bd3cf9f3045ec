package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"green-saas/app/storage"
	"green-saas/config"
	"green-saas/database"
	FiberApp "green-saas/fiber"
	"green-saas/route"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	// 1. Configuration
	config.LoadEnv()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// 2. Backends
	database.ConnectPostgres(cfg.DatabaseURL)
	defer database.PostgresDB.Close()

	if err := database.RunMigrations(database.PostgresDB); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)

	database.OpenSessionStore(cfg.SessionPath)
	defer database.CloseSessionStore()

	var images storage.ImageStore
	if cfg.B2AccountID != "" && cfg.B2Bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		b2, err := storage.NewB2Storage(ctx, cfg.B2AccountID, cfg.B2AppKey, cfg.B2Bucket)
		cancel()
		if err != nil {
			log.Fatalf("failed to set up image storage: %v", err)
		}
		images = b2
	} else {
		log.Warn("B2 storage not configured, uploads disabled")
	}

	// 3. Fiber app and routes
	app := FiberApp.SetupFiber("./templates")
	route.SetupRoutes(app, route.Deps{
		Postgres: database.PostgresDB,
		Mongo:    database.MongoDB,
		Sessions: database.SessionDB,
		Images:   images,
		Config:   cfg,
	})

	// 4. Start server
	go func() {
		log.Infof("server running on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorf("server stopped: %v", err)
		}
	}()

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
	database.DisconnectMongo(ctx)
}
