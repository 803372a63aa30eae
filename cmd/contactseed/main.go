package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"addressbook/contact"
	"addressbook/pkg/config"
	"addressbook/pkg/sentry"
	"addressbook/postgres"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	var csvPath string
	flag.StringVar(&csvPath, "csv", "", "Path to a contacts CSV with firstName,lastName,phone,email columns (default: built-in samples)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	if err := sentrygo.Init(sentrygo.ClientOptions{Dsn: cfg.SentryDSN, Environment: cfg.AppEnv}); err != nil {
		slog.Error("cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		sentry.Fatal(err)
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}
	defer func() { _ = postgres.Close(db) }()

	payloads := sampleContacts()
	if csvPath != "" {
		file, err := os.Open(csvPath)
		if err != nil {
			slog.Error("cannot open csv", "error", err)
			os.Exit(1)
		}
		payloads, err = readContactsCSV(file)
		_ = file.Close()
		if err != nil {
			slog.Error("cannot read csv", "error", err)
			os.Exit(1)
		}
	}

	svc := contact.NewUsecase(postgres.NewContactRepository(db))
	count, err := seedContacts(context.Background(), svc, payloads)
	if err != nil {
		sentry.Fatal(err)
		slog.Error("seed failed", "error", err, "inserted", count)
		os.Exit(1)
	}

	slog.Info("seed completed", "inserted", count)
}
