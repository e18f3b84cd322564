package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	dashhandler "github.com/aliskhannn/edutrack/internal/api/handlers/dashboard"
	meethandler "github.com/aliskhannn/edutrack/internal/api/handlers/meeting"
	notifhandler "github.com/aliskhannn/edutrack/internal/api/handlers/notification"
	"github.com/aliskhannn/edutrack/internal/api/router"
	"github.com/aliskhannn/edutrack/internal/api/server"
	"github.com/aliskhannn/edutrack/internal/cache"
	"github.com/aliskhannn/edutrack/internal/client/remote"
	"github.com/aliskhannn/edutrack/internal/client/telegram"
	"github.com/aliskhannn/edutrack/internal/client/zoom"
	"github.com/aliskhannn/edutrack/internal/config"
	notifmsg "github.com/aliskhannn/edutrack/internal/rabbitmq/handlers/notification"
	"github.com/aliskhannn/edutrack/internal/rabbitmq/queue"
	msgrepo "github.com/aliskhannn/edutrack/internal/repository/message"
	notifrepo "github.com/aliskhannn/edutrack/internal/repository/notification"
	rankrepo "github.com/aliskhannn/edutrack/internal/repository/ranking"
	"github.com/aliskhannn/edutrack/internal/schema"
	"github.com/aliskhannn/edutrack/internal/service/dashboard"
	"github.com/aliskhannn/edutrack/internal/service/meeting"
	notifsvc "github.com/aliskhannn/edutrack/internal/service/notification"
	"github.com/aliskhannn/edutrack/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	loc, err := cfg.Scheduler.Location()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load scheduler timezone")
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDispatchQueue(ch, cfg.RabbitMQ)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create dispatch queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	requests := notifrepo.NewRepository(db)
	messages := msgrepo.NewRepository(db)
	rankings := rankrepo.NewRepository(db)

	schemas := schema.New()

	telegramClient := telegram.NewClient(remote.New(
		cfg.Telegram.BaseURL,
		remote.WithToken(cfg.Telegram.Token),
		remote.WithTimeout(cfg.Telegram.Timeout),
		remote.WithRateLimit(cfg.Telegram.RatePerSec),
	), schemas)

	zoomClient := zoom.NewClient(remote.New(
		cfg.Zoom.BaseURL,
		remote.WithToken(cfg.Zoom.Token),
		remote.WithTimeout(cfg.Zoom.Timeout),
		remote.WithRateLimit(cfg.Zoom.RatePerSec),
	), schemas)

	notifService := notifsvc.NewService(requests, messages, telegramClient, q, rdb, notifsvc.Options{
		Strategy:       cfg.Retry,
		RemoteDeferral: cfg.Scheduler.RemoteDeferral,
		Location:       loc,
		RecentLimit:    cfg.Scheduler.RecentLimit,
		ClaimTTL:       cfg.Scheduler.ClaimTTL,
	})

	recovered, err := notifService.Recover(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to recover pending notifications")
	} else {
		zlog.Logger.Info().Int("count", recovered).Msg("pending notifications re-queued")
	}

	notifier := worker.NewNotifier(q, notifmsg.NewHandler(notifService), notifService)

	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)

	meetingService := meeting.NewService(zoomClient, cache.NewJSON(rdb.Client, "meetings", cfg.Cache.TTL, cfg.Retry))
	readModel := dashboard.NewCached(
		dashboard.NewService(rankings, requests, cfg.Scheduler.RecentLimit),
		cache.NewJSON(rdb.Client, "dashboard", cfg.Cache.TTL, cfg.Retry),
	)

	r := router.New(
		notifhandler.NewHandler(notifService, val, loc),
		meethandler.NewHandler(meetingService, val),
		dashhandler.NewHandler(readModel),
		cfg.Server.RequestTimeout,
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis")
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
