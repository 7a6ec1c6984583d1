// Job - обработка новых заказов
// Опрос Kafka -> расчет и сохранение наград клиента
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	config "github.com/glkeru/loyalty/rewards/internal/config"
	db "github.com/glkeru/loyalty/rewards/internal/db"
	kafka "github.com/glkeru/loyalty/rewards/internal/external/kafka"
	rabbit "github.com/glkeru/loyalty/rewards/internal/external/rabbitmq"
	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	logger "github.com/glkeru/loyalty/rewards/internal/logger"
	services "github.com/glkeru/loyalty/rewards/internal/services"
	"go.uber.org/zap"
)

func main() {
	// config
	cfg, err := config.GetConfig()
	if err != nil {
		panic(err)
	}

	// log
	log, err := logger.NewZapLog(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// kafka
	var reader interf.OrderReader
	reader, err = kafka.GetNewReader(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka reader", zap.Error(err))
	}
	defer reader.CloseReader()

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

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, cfg.OrdersCount)

	for {
		order, err := reader.GetNewMessage(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Error("read order", zap.Error(err))
			}
			break
		}

		semaphore <- struct{}{}
		wg.Add(1)
		go func(order string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			record, err := serv.ProcessOrder(ctx, order)
			if err != nil {
				log.Error("process order", zap.Error(err), zap.String("order", order))
				return
			}
			log.Info("rewards calculated",
				zap.String("email", record.Email),
				zap.Int("points", record.RewardPoints),
			)
		}(order)
	}
	wg.Wait()
}
