package main

import (
	"context"
	"log"
	"time"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/data/schema"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/events"
	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.Migrate(ctx, db, schema.SQL)
		cancel()
		if err != nil {
			logger.Fatal("Failed to apply schema", zap.Error(err))
		}
		logger.Info("Schema applied")
	}

	var sessions repository.SessionRepository
	if config.Session.Store == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err), zap.String("addr", config.Redis.Addr))
		}
		sessions = repository.NewSessionRedisRepository(rdb, logger)
		logger.Info("Using redis session store", zap.String("addr", config.Redis.Addr))
	}

	repos := repository.NewRepository(db, sessions, logger)

	var publisher events.Publisher = events.Nop{}
	if config.Kafka.Enabled() {
		kp, err := events.NewKafkaPublisher(config.Kafka.Brokers, config.Kafka.Topic, logger)
		if err != nil {
			logger.Fatal("Failed to create event publisher", zap.Error(err))
		}
		publisher = kp
		logger.Info("Publishing events to kafka",
			zap.Strings("brokers", config.Kafka.Brokers),
			zap.String("topic", config.Kafka.Topic))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", zap.Error(err))
		}
	}()

	app := wire.Wiring(repos, publisher, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
