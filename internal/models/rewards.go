package rewards

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// Уровень программы лояльности
type Tier struct {
	Points     int    `bson:"points" json:"points"`         // порог баллов
	Tier       string `bson:"tier" json:"tier"`             // идентификатор уровня
	RewardName string `bson:"rewardName" json:"rewardName"` // название награды
}

// Снимок наград клиента, сохраняется при каждом расчете
type CustomerRewards struct {
	ID               uuid.UUID `bson:"id" json:"-"`
	Email            string    `bson:"email" json:"email"`
	RewardPoints     int       `bson:"rewardPoints" json:"rewardPoints"`
	CurrentTier      *string   `bson:"currentTier" json:"currentTier"`
	CurrentTierName  *string   `bson:"currentTierName" json:"currentTierName"`
	NextTier         *string   `bson:"nextTier" json:"nextTier"`
	NextTierName     *string   `bson:"nextTierName" json:"nextTierName"`
	NextTierProgress Progress  `bson:"nextTierProgress" json:"nextTierProgress"`
	CreatedAt        time.Time `bson:"createdAt" json:"-"`
}

// Положение произвольной суммы баллов относительно таблицы уровней
type TierPosition struct {
	Points           int      `json:"points"`
	CurrentTier      *string  `json:"currentTier"`
	CurrentTierName  *string  `json:"currentTierName"`
	NextTier         *string  `json:"nextTier"`
	NextTierName     *string  `json:"nextTierName"`
	NextTierProgress Progress `json:"nextTierProgress"`
}

// Ошибка входных данных запроса
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func MissingArgument(name string) error {
	return &ValidationError{Field: name, Msg: "missing argument"}
}
