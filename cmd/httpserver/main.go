package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"contacthub/contact"
	"contacthub/dynamodb"
	"contacthub/httpserver"
	"contacthub/inmem"
	"contacthub/pkg/config"
	"contacthub/pkg/notify"
	"contacthub/postgres"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

const sentryFlushTime = 2 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentryFlushTime)

	repo, err := newContactRepository(cfg)
	if err != nil {
		slog.Error("Cannot set up contact storage", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}

	usecase := contact.NewUsecase(repo, contact.WithNotifier(notify.NewSentryNotifier(logger)))

	server := httpserver.Default(cfg)
	server.ContactService = usecase
	if cfg.Port != 0 {
		server.Addr = fmt.Sprintf(":%d", cfg.Port)
	}

	slog.Info("server started!", "addr", server.Addr, "storage", storageDriver(cfg))
	if err := server.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func newContactRepository(cfg *config.Config) (contact.Repository, error) {
	switch storageDriver(cfg) {
	case "postgres":
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     fmt.Sprintf("%d", cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, err
		}
		return postgres.NewContactRepository(db), nil
	case "dynamodb":
		client, err := dynamodb.NewClient(context.Background(), dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, err
		}
		return dynamodb.NewContactRepository(client, cfg.DynamoDB.ContactsTable), nil
	case "memory":
		return inmem.NewContactRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.DB.Driver)
	}
}

func storageDriver(cfg *config.Config) string {
	if cfg.DB.Driver == "" {
		return "memory"
	}
	return cfg.DB.Driver
}
