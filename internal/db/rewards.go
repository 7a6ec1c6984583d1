package rewards

import (
	"context"
	"errors"
	"fmt"
	"time"

	config "github.com/glkeru/loyalty/rewards/internal/config"
	models "github.com/glkeru/loyalty/rewards/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	tiersCollection     = "rewards"
	customersCollection = "customerRewards"
)

// Один клиент с пулом соединений на весь процесс
type RewardsDB struct {
	mgo       *mongo.Client
	tiers     *mongo.Collection
	customers *mongo.Collection
}

func NewRewardsDB(ctx context.Context, cfg config.MongoConfig) (*RewardsDB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	options := options.Client().ApplyURI("mongodb://" + cfg.Addr)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return NewRewardsDBWithClient(client, cfg.Database), nil
}

func NewRewardsDBWithClient(client *mongo.Client, database string) *RewardsDB {
	db := client.Database(database)
	return &RewardsDB{
		mgo:       client,
		tiers:     db.Collection(tiersCollection),
		customers: db.Collection(customersCollection),
	}
}

func (r *RewardsDB) Close(ctx context.Context) error {
	return r.mgo.Disconnect(ctx)
}

// Вся таблица уровней по возрастанию порога
func (r *RewardsDB) GetTiers(ctx context.Context) ([]models.Tier, error) {
	opts := options.Find().SetSort(bson.D{{Key: "points", Value: 1}})
	result, err := r.tiers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer result.Close(ctx)

	tiers := []models.Tier{}
	for result.Next(ctx) {
		var tier models.Tier
		err := result.Decode(&tier)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, result.Err()
}

func (r *RewardsDB) FindHighestTierAtOrBelow(ctx context.Context, points int) (*models.Tier, error) {
	filter := bson.M{"points": bson.M{"$lte": points}}
	opts := options.FindOne().SetSort(bson.D{{Key: "points", Value: -1}})
	return r.findTier(ctx, filter, opts)
}

func (r *RewardsDB) FindLowestTierAbove(ctx context.Context, points int) (*models.Tier, error) {
	filter := bson.M{"points": bson.M{"$gt": points}}
	opts := options.FindOne().SetSort(bson.D{{Key: "points", Value: 1}})
	return r.findTier(ctx, filter, opts)
}

// nil без ошибки - подходящего уровня нет
func (r *RewardsDB) findTier(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*models.Tier, error) {
	tier := &models.Tier{}
	err := r.tiers.FindOne(ctx, filter, opts).Decode(tier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tier, nil
}

// Записи только добавляются, уникальность email не проверяется
func (r *RewardsDB) InsertCustomerRecord(ctx context.Context, record models.CustomerRewards) error {
	_, err := r.customers.InsertOne(ctx, record)
	return err
}

// Последняя по времени запись клиента
func (r *RewardsDB) FindCustomerByEmail(ctx context.Context, email string) (*models.CustomerRewards, error) {
	filter := bson.M{"email": email}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	record := &models.CustomerRewards{}
	err := r.customers.FindOne(ctx, filter, opts).Decode(record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("customer %w", models.ErrNotFound)
		}
		return nil, err
	}
	return record, nil
}

func (r *RewardsDB) FindAllCustomerRecords(ctx context.Context) ([]models.CustomerRewards, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	result, err := r.customers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer result.Close(ctx)

	records := []models.CustomerRewards{}
	for result.Next(ctx) {
		var record models.CustomerRewards
		err := result.Decode(&record)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, result.Err()
}

// Отслеживание изменений таблицы уровней (нужен replica set).
// onChange вызывается на каждое событие; выход по отмене ctx.
func (r *RewardsDB) WatchTiers(ctx context.Context, onChange func(ctx context.Context)) error {
	stream, err := r.tiers.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return err
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		onChange(ctx)
	}
	if ctx.Err() != nil {
		return nil
	}
	return stream.Err()
}
