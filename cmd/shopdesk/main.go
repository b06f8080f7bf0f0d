package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/shopdesk/internal/api"
	"github.com/Spok95/shopdesk/internal/app"
	"github.com/Spok95/shopdesk/internal/bot"
	"github.com/Spok95/shopdesk/internal/config"
	"github.com/Spok95/shopdesk/internal/infra/db"
	httpx "github.com/Spok95/shopdesk/internal/infra/http"
	"github.com/Spok95/shopdesk/internal/infra/logger"
	"github.com/Spok95/shopdesk/internal/infra/metrics"
	"github.com/Spok95/shopdesk/internal/infra/payments"
	"github.com/Spok95/shopdesk/internal/store"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfgPath := flag.String("config", "config/example.yaml", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)

	st, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", "driver", cfg.Storage.Driver, "err", err)
		return
	}
	defer closeStore()

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using UTC", "timezone", cfg.App.Timezone, "err", err)
		loc = time.UTC
	}

	a, err := app.Open(ctx, store.WithMetrics(st, m), app.Options{
		Log:     log,
		Metrics: m,
		Now:     func() time.Time { return time.Now().In(loc) },
	})
	if err != nil {
		log.Error("load collections failed", "err", err)
		return
	}

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	pay := payments.NewService(cfg.HTTP.PublicURL, a.Bookings, a.Sales)
	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, map[string]http.Handler{
		"/api/":         api.New(a, pay),
		"/payments/pay": payments.NewHandler(log, pay),
	})
	go func() {
		if err := srv.Start(); err != nil {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if cfg.Telegram.Token != "" {
		if err := startBot(ctx, cfg, log, a, pay); err != nil {
			log.Error("telegram bot disabled", "err", err)
		}
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

// openStore выбирает хранилище по storage.driver.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (store.Store, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Warn("in-memory storage: data is lost on exit")
		return store.NewMemory(), noop, nil
	case config.DriverFile:
		f, err := store.NewFile(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.Info("file storage", "dir", cfg.Storage.Dir)
		return f, noop, nil
	case config.DriverPostgres:
		if err := db.Migrate(cfg.Postgres.DSN); err != nil {
			return nil, noop, fmt.Errorf("migrations: %w", err)
		}
		log.Info("migrations applied")
		pool, err := db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("db connect: %w", err)
		}
		log.Info("db connected")
		return store.NewPostgres(pool), pool.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func startBot(ctx context.Context, cfg config.Config, log *slog.Logger, a *app.App, pay *payments.Service) error {
	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return err
	}
	log.Info("telegram bot authorized", "username", botAPI.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)

	b := bot.New(botAPI, log, a, pay, cfg.Telegram.AdminChatID)
	go func() {
		_ = b.Run(ctx, updates)
		botAPI.StopReceivingUpdates()
	}()
	return nil
}
