package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Karthiknalam/mern-store-frontend/internal/api"
	"github.com/Karthiknalam/mern-store-frontend/internal/app"
	"github.com/Karthiknalam/mern-store-frontend/internal/cart"
	"github.com/Karthiknalam/mern-store-frontend/internal/config"
	"github.com/Karthiknalam/mern-store-frontend/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	storage, err := buildSessionStorage(cfg)
	if err != nil {
		log.Fatalf("session storage: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := session.NewStore()
	session.Restore(ctx, sessions, storage)
	session.Persist(sessions, storage)

	client := api.New(cfg.APIURL, sessions)
	a := app.New(client, cart.New(), sessions, time.Duration(cfg.RequestTimeout), os.Stdin, os.Stdout)

	if err := a.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("storefront exited: %v", err)
	}
}

func buildSessionStorage(cfg config.Config) (session.Storage, error) {
	switch cfg.Session.Backend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
		})
		return session.NewRedisStorage(client, cfg.Session.DeviceID), nil
	default:
		path := cfg.Session.Path
		if path == "" {
			var err error
			path, err = session.DefaultSessionPath()
			if err != nil {
				return nil, err
			}
		}
		return session.NewFileStorage(path), nil
	}
}
