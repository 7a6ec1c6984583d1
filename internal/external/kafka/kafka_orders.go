package rewards

import (
	"context"
	"fmt"

	config "github.com/glkeru/loyalty/rewards/internal/config"
	"github.com/segmentio/kafka-go"
)

type KafkaOrder struct {
	reader *kafka.Reader
}

func GetNewReader(cfg config.KafkaConfig) (reader *KafkaOrder, err error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("env KAFKA_ORDER_URL is not set")
	}
	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{cfg.Addr + ":" + cfg.Port},
		Topic:   cfg.Topic,
		GroupID: "orders_rewards",
	}
	return &KafkaOrder{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaOrder) GetNewMessage(ctx context.Context) (order string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *KafkaOrder) CloseReader() {
	k.reader.Close()
}
