package rewards

import (
	"context"

	models "github.com/glkeru/loyalty/rewards/internal/models"
)

//go:generate mockgen -destination=./../services/mock_rewards_test.go -package=rewards . RewardsStorage,TierCache,SnapshotNotifier

type RewardsStorage interface {
	GetTiers(ctx context.Context) ([]models.Tier, error)
	FindHighestTierAtOrBelow(ctx context.Context, points int) (*models.Tier, error)
	FindLowestTierAbove(ctx context.Context, points int) (*models.Tier, error)
	InsertCustomerRecord(ctx context.Context, record models.CustomerRewards) error
	FindCustomerByEmail(ctx context.Context, email string) (*models.CustomerRewards, error)
	FindAllCustomerRecords(ctx context.Context) ([]models.CustomerRewards, error)
}

type TierCache interface {
	GetTiers(ctx context.Context) ([]models.Tier, error)
	SetTiers(ctx context.Context, tiers []models.Tier) error
	InvalidateTiers(ctx context.Context) error
}

type SnapshotNotifier interface {
	Notify(ctx context.Context, record models.CustomerRewards) error
}

type OrderReader interface {
	GetNewMessage(ctx context.Context) (order string, err error)
	CloseReader()
}
