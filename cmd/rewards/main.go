// HTTP API - расчет и получение наград клиентов
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/loyalty/rewards/internal/api"
	config "github.com/glkeru/loyalty/rewards/internal/config"
	db "github.com/glkeru/loyalty/rewards/internal/db"
	rabbit "github.com/glkeru/loyalty/rewards/internal/external/rabbitmq"
	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	logger "github.com/glkeru/loyalty/rewards/internal/logger"
	services "github.com/glkeru/loyalty/rewards/internal/services"
	otel "github.com/glkeru/loyalty/rewards/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// config
	cfg, err := config.GetConfig()
	if err != nil {
		panic(err)
	}
	if cfg.Port == "" {
		panic("env REWARDS_PORT is not set")
	}

	// log
	log, err := logger.NewZapLog(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// tracing
	if cfg.OtelEndpoint != "" {
		shutdown, err := otel.InitTracer(ctx, cfg.OtelEndpoint, "rewards", log)
		if err != nil {
			log.Fatal("tracer init", zap.Error(err))
		}
		defer shutdown(context.Background())
	}

	// database
	storage, err := db.NewRewardsDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal("mongo connect", zap.Error(err))
	}
	defer storage.Close(context.Background())

	// cache
	var cache interf.TierCache
	if cfg.Cache.Enabled() {
		redis, err := db.NewCacheService(ctx, cfg.Cache)
		if err != nil {
			log.Error("redis connect, cache disabled", zap.Error(err))
		} else {
			defer redis.Close()
			cache = redis
		}
	}

	// уведомления о расчетах
	var notifier interf.SnapshotNotifier
	if cfg.Rabbit.Enabled() {
		publisher, err := rabbit.NewRabbitPublisher(cfg.Rabbit)
		if err != nil {
			log.Error("rabbit connect, notifications disabled", zap.Error(err))
		} else {
			defer publisher.Close()
			notifier = publisher
		}
	}

	serv := services.NewRewardsService(storage, cache, notifier, log)

	// api handlers
	r := api.NewHandler(serv, log)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "rewards"),
		Addr:         ":" + cfg.Port,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", zap.String("addr", srv.Addr))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	// изменения таблицы уровней сбрасывают кэш
	if cache != nil {
		g.Go(func() error {
			err := storage.WatchTiers(gctx, func(ctx context.Context) {
				if err := serv.InvalidateTiers(ctx); err != nil {
					log.Error("invalidate tiers", zap.Error(err))
				}
			})
			if err != nil {
				log.Warn("tier watcher stopped, cache relies on TTL", zap.Error(err))
			}
			return nil
		})
	}

	// shutdown
	g.Go(func() error {
		<-gctx.Done()
		timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(timeout)
	})

	if err := g.Wait(); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
