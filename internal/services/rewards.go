package rewards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	interf "github.com/glkeru/loyalty/rewards/internal/interfaces"
	models "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("rewards")

type RewardsService struct {
	db       interf.RewardsStorage
	cache    interf.TierCache
	notifier interf.SnapshotNotifier
	logger   *zap.Logger
	now      func() time.Time
}

// cache и notifier необязательны
func NewRewardsService(db interf.RewardsStorage, cache interf.TierCache, notifier interf.SnapshotNotifier, logger *zap.Logger) *RewardsService {
	return &RewardsService{
		db:       db,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// log
func (s *RewardsService) Log(msg string, service string, err error) {
	s.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Расчет и сохранение наград по сумме заказа
func (s *RewardsService) Snapshot(ctx context.Context, email string, orderTotal string) (models.CustomerRewards, error) {
	ctx, span := tracer.Start(ctx, "Snapshot")
	defer span.End()

	if strings.TrimSpace(email) == "" {
		return models.CustomerRewards{}, models.MissingArgument("email")
	}
	points, err := ComputePoints(orderTotal)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return models.CustomerRewards{}, err
	}
	span.SetAttributes(attribute.Int("rewards.points", points))

	// все расчеты по одному снимку таблицы уровней
	table, err := s.Tiers(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return models.CustomerRewards{}, err
	}

	record := Calculate(email, points, table)
	record.ID = uuid.New()
	record.CreatedAt = s.now().UTC()

	err = s.db.InsertCustomerRecord(ctx, record)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return models.CustomerRewards{}, err
	}

	if s.notifier != nil {
		err = s.notifier.Notify(ctx, record)
		if err != nil {
			s.Log("Notify", "Snapshot", err)
		}
	}
	return record, nil
}

// Таблица уровней: кэш, затем база
func (s *RewardsService) Tiers(ctx context.Context) (TierTable, error) {
	if s.cache != nil {
		tiers, err := s.cache.GetTiers(ctx)
		if err == nil {
			return NewTierTable(tiers), nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			s.Log("Cache get", "Tiers", err)
		}
	}

	tiers, err := s.db.GetTiers(ctx)
	if err != nil {
		return nil, err
	}
	table := NewTierTable(tiers)

	if s.cache != nil {
		err = s.cache.SetTiers(ctx, table)
		if err != nil {
			s.Log("Cache set", "Tiers", err)
		}
	}
	return table, nil
}

// Сбросить кэш таблицы уровней
func (s *RewardsService) InvalidateTiers(ctx context.Context) error {
	if s.cache != nil {
		return s.cache.InvalidateTiers(ctx)
	}
	return nil
}

// Положение суммы баллов относительно уровней, запросами напрямую к хранилищу
func (s *RewardsService) TierFor(ctx context.Context, points int) (models.TierPosition, error) {
	ctx, span := tracer.Start(ctx, "TierFor")
	defer span.End()

	if points < 0 {
		return models.TierPosition{}, &models.ValidationError{Field: "points", Msg: "must not be negative"}
	}
	if points > MaxPoints {
		return models.TierPosition{}, &models.ValidationError{Field: "points", Msg: fmt.Sprintf("exceeds maximum of %d", MaxPoints)}
	}

	var current, projected, next *models.Tier
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = s.db.FindHighestTierAtOrBelow(gctx, points)
		return err
	})
	g.Go(func() (err error) {
		projected, err = s.db.FindHighestTierAtOrBelow(gctx, points+NextTierOffset)
		return err
	})
	g.Go(func() (err error) {
		next, err = s.db.FindLowestTierAbove(gctx, points)
		return err
	})
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return models.TierPosition{}, err
	}

	position := models.TierPosition{Points: points}
	if current != nil {
		position.CurrentTier = &current.Tier
		position.CurrentTierName = &current.RewardName
	}
	if projected != nil {
		position.NextTier = &projected.Tier
		position.NextTierName = &projected.RewardName
	}
	if next == nil {
		position.NextTierProgress = models.MaxTierReached()
	} else {
		position.NextTierProgress = progressTo(points, next.Points)
	}
	return position, nil
}

// Последний снимок клиента
func (s *RewardsService) Customer(ctx context.Context, email string) (*models.CustomerRewards, error) {
	return s.db.FindCustomerByEmail(ctx, email)
}

// Все снимки
func (s *RewardsService) Customers(ctx context.Context) ([]models.CustomerRewards, error) {
	records, err := s.db.FindAllCustomerRecords(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.CustomerRewards{}
	}
	return records, nil
}

// Заказ из очереди
type OrderMessage struct {
	Email      string      `json:"email"`
	OrderTotal json.Number `json:"order_total"`
}

// Обработка заказа из Kafka
func (s *RewardsService) ProcessOrder(ctx context.Context, order string) (models.CustomerRewards, error) {
	msg := &OrderMessage{}
	err := json.Unmarshal([]byte(order), msg)
	if err != nil {
		return models.CustomerRewards{}, fmt.Errorf("invalid order: %w", err)
	}
	if msg.OrderTotal == "" {
		return models.CustomerRewards{}, models.MissingArgument("order_total")
	}
	return s.Snapshot(ctx, msg.Email, msg.OrderTotal.String())
}
