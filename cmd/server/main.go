package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zanspiler/forums/internal/config"
	"github.com/zanspiler/forums/internal/forum"
	api "github.com/zanspiler/forums/internal/http"
	"github.com/zanspiler/forums/internal/log"
	"github.com/zanspiler/forums/internal/metrics"
	"github.com/zanspiler/forums/internal/queue"
	"github.com/zanspiler/forums/internal/repo"
)

// @title Forums API
// @version 0.1.0
// @description Forum backend: forums, posts, comments, likes, following feed.
// @schemes http https
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	logger, err := log.Init(cfg.Prod)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	metrics.MustRegister()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Errorf("mongo connect: %v", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Errorf("ensure indexes: %v", err)
		os.Exit(1)
	}

	var limiter api.Limiter
	rds := repo.NewRedis(cfg.RedisAddr)
	if err := rds.Ping(ctx); err != nil {
		log.Errorf("redis unavailable, rate limiting disabled: %v", err)
	} else {
		defer rds.Close()
		limiter = repo.NewRateLimiter(rds, cfg.RateLimitPerMin, time.Minute)
	}

	var pub queue.Publisher = queue.NewNoop()
	if cfg.RabbitURL != "" {
		p, err := queue.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Errorf("rabbit connect: %v", err)
			os.Exit(1)
		}
		pub = p
	}
	defer pub.Close()

	svc := forum.NewService(store)
	h := api.NewHandler(svc, cfg.JWTSecret, cfg.AccessTTLMin, pub)
	r := api.NewRouter(h, limiter)

	srvErr := make(chan error, 1)
	go func() { srvErr <- r.Run(":" + cfg.Port) }()

	log.Infof("forums listening on :%s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Infof("signal: %s, shutting down", s)
	case err := <-srvErr:
		log.Errorf("server error: %v", err)
	}
}
