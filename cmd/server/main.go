package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"prankpress/internal/conf"
	"prankpress/internal/generate"
	"prankpress/internal/leaderboard"
	"prankpress/internal/server"
	"prankpress/internal/service"
	"prankpress/internal/store"
	"prankpress/pkg/logger"
)

func main() {
	// .env is optional outside local development
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := conf.LoadConfig("configs/config.yaml")
	if err != nil {
		logger.Fatal("❌ LoadConfig error", zap.Error(err))
	}
	defer logger.Sync()

	client, err := store.Connect(context.Background(), cfg.Mongo.URI)
	if err != nil {
		logger.Fatal("❌ Mongo connect error", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()
	articles := store.NewMongo(client, cfg.Mongo.Database, cfg.Mongo.Collection)

	gen, err := generate.NewOpenAI(cfg.Generator)
	if err != nil {
		logger.Fatal("❌ Generator init error", zap.Error(err))
	}

	var board *leaderboard.Board
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		board = leaderboard.New(rdb, articles, cfg.Leaderboard.Size)
		if err := board.StartRebuilder(cfg.Leaderboard.RebuildEvery); err != nil {
			logger.Warn("leaderboard rebuilder not scheduled", zap.Error(err))
		}
		defer board.Stop()
	}

	srv := server.NewServer(server.Options{
		Creation:  service.NewCreation(articles, gen, cfg.Server.BaseURL),
		Rendering: service.NewRendering(articles, board),
		Board:     board,
	})

	port := cfg.Server.Port
	if port == "" {
		port = ":8080"
	}

	log.Printf("🌐 PrankPress running at http://localhost%s", port)
	if err := srv.Run(port); err != nil {
		logger.Fatal("❌ Server error", zap.Error(err))
	}
}
