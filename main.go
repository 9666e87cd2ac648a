package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"travel-webapp/config"
	"travel-webapp/database"
	"travel-webapp/logger"
	"travel-webapp/paystore"
	"travel-webapp/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.Init(cfg.App.LogPath, cfg.App.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database.UsersCollection, err = database.DBInit(cfg.Mongo, "users")
	if err != nil {
		log.Fatal("cannot initialize users collection", zap.Error(err))
	}
	database.PackagesCollection, err = database.DBInit(cfg.Mongo, "packages")
	if err != nil {
		log.Fatal("cannot initialize packages collection", zap.Error(err))
	}
	database.BookingsCollection, err = database.DBInit(cfg.Mongo, "bookings")
	if err != nil {
		log.Fatal("cannot initialize bookings collection", zap.Error(err))
	}

	sessionTTL := time.Duration(cfg.Redis.SessionTTL) * time.Minute
	redisStore, err := paystore.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, sessionTTL)
	if err != nil {
		log.Warn("redis unavailable, payment sessions held in process memory", zap.Error(err))
		database.Payments = paystore.NewMemoryStore()
	} else {
		defer redisStore.Close()
		database.Payments = redisStore
	}

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})

	router.SetupRoutes(app)

	log.Info("starting server", zap.String("port", cfg.App.Port))
	if err := app.Listen(":" + cfg.App.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
