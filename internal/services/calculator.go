package rewards

import (
	"fmt"
	"math"
	"sort"
	"strings"

	models "github.com/glkeru/loyalty/rewards/internal/models"
	"github.com/shopspring/decimal"
)

// Смещение для расчета "следующего" уровня: каким был бы уровень при +100 баллах
const NextTierOffset = 100

// Наибольшая сумма баллов: с учетом смещения остается в пределах int
const MaxPoints = math.MaxInt - NextTierOffset

// Расчет баллов: 1 балл за каждую целую денежную единицу, дробная часть отбрасывается
func ComputePoints(orderTotal string) (int, error) {
	s := strings.TrimSpace(orderTotal)
	if s == "" {
		return 0, &models.ValidationError{Field: "order_total", Msg: "empty value"}
	}
	total, err := decimal.NewFromString(s)
	if err != nil {
		return 0, &models.ValidationError{Field: "order_total", Msg: fmt.Sprintf("could not convert %q to a number", orderTotal)}
	}
	if total.IsNegative() {
		return 0, &models.ValidationError{Field: "order_total", Msg: "must not be negative"}
	}
	points := total.Floor()
	if points.GreaterThan(decimal.NewFromInt(int64(MaxPoints))) {
		return 0, &models.ValidationError{Field: "order_total", Msg: fmt.Sprintf("exceeds maximum of %d points", MaxPoints)}
	}
	return int(points.IntPart()), nil
}

// Таблица уровней, отсортированная по возрастанию порога
type TierTable []models.Tier

func NewTierTable(tiers []models.Tier) TierTable {
	table := make(TierTable, len(tiers))
	copy(table, tiers)
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Points < table[j].Points
	})
	return table
}

// индекс первого уровня с порогом строго выше points
func (t TierTable) above(points int) int {
	return sort.Search(len(t), func(i int) bool {
		return t[i].Points > points
	})
}

// Наибольший уровень с порогом <= points. false - уровня еще нет, это не ошибка
func (t TierTable) FindTier(points int) (models.Tier, bool) {
	i := t.above(points)
	if i == 0 {
		return models.Tier{}, false
	}
	return t[i-1], true
}

// Наименьший уровень с порогом > points
func (t TierTable) Next(points int) (models.Tier, bool) {
	i := t.above(points)
	if i == len(t) {
		return models.Tier{}, false
	}
	return t[i], true
}

// Прогресс до следующего уровня
func (t TierTable) ComputeProgress(points int) models.Progress {
	next, ok := t.Next(points)
	if !ok {
		return models.MaxTierReached()
	}
	return progressTo(points, next.Points)
}

func progressTo(points, threshold int) models.Progress {
	if threshold <= 0 || points <= 0 {
		return models.Fraction(decimal.Zero)
	}
	return models.Fraction(decimal.NewFromInt(int64(points)).Div(decimal.NewFromInt(int64(threshold))))
}

// Снимок наград по сумме баллов и таблице уровней
func Calculate(email string, points int, table TierTable) models.CustomerRewards {
	record := models.CustomerRewards{
		Email:        email,
		RewardPoints: points,
	}
	if tier, ok := table.FindTier(points); ok {
		record.CurrentTier = &tier.Tier
		record.CurrentTierName = &tier.RewardName
	}
	if tier, ok := table.FindTier(points + NextTierOffset); ok {
		record.NextTier = &tier.Tier
		record.NextTierName = &tier.RewardName
	}
	record.NextTierProgress = table.ComputeProgress(points)
	return record
}
