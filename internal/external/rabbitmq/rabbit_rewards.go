package rewards

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	config "github.com/glkeru/loyalty/rewards/internal/config"
	models "github.com/glkeru/loyalty/rewards/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const queue = "rewards"

// Публикация рассчитанных снимков наград
type RabbitPublisher struct {
	conn *amqp.Connection
	mu   sync.Mutex // amqp.Channel не рассчитан на параллельную публикацию
	ch   *amqp.Channel
}

func NewRabbitPublisher(cfg config.RabbitConfig) (rabbit *RabbitPublisher, err error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("env RABBIT_URL is not set")
	}
	rabbitconn := "amqp://" + cfg.User + ":" + cfg.Password + "@" + cfg.Addr + ":" + cfg.Port + "/"
	conn, err := amqp.Dial(rabbitconn)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &RabbitPublisher{conn: conn, ch: ch}, nil
}

func (r *RabbitPublisher) Close() {
	r.ch.Close()
	r.conn.Close()
}

// Сообщение о расчете
type RewardsCalculated struct {
	models.CustomerRewards
	CalculatedAt string `json:"calculatedAt"`
}

func (r *RabbitPublisher) Notify(ctx context.Context, record models.CustomerRewards) error {
	msg, err := json.Marshal(&RewardsCalculated{record, record.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00")})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ch.PublishWithContext(ctx,
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   record.ID.String(),
			Body:        msg,
		})
}
