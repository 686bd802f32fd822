package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/crm/internal/api"
	"github.com/samandr77/crm/internal/clients/gomail"
	"github.com/samandr77/crm/internal/repository"
	"github.com/samandr77/crm/internal/service"
	"github.com/samandr77/crm/pkg/broker"
	"github.com/samandr77/crm/pkg/config"
	"github.com/samandr77/crm/pkg/i18n"
	"github.com/samandr77/crm/pkg/logger"
	"github.com/samandr77/crm/pkg/postgres"
)

const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	var mailer service.Mailer
	if cfg.Mailer.Enabled {
		mailer = gomail.New(cfg.Mailer)
	}

	langs, err := i18n.New(cfg.I18N.DefaultLang)
	panicOnErr("load locales", err)

	sessions := service.NewSessionManager(cfg.Session.Secret, cfg.Session.TTL)

	s := service.New(repo, sessions, producer, mailer, langs)

	err = s.EnsureDefaults(ctx)
	panicOnErr("seed defaults", err)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s, langs, cfg.I18N.DefaultLang)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
