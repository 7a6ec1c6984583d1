package rewards

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Progress - прогресс до следующего уровня.
// Либо доля в [0,1] с точностью до сотых, либо признак максимального уровня.
// На проводе доля пишется строкой "0.50", максимальный уровень - числом 1.
type Progress struct {
	fraction decimal.Decimal
	max      bool
}

// Доля округляется до сотых
func Fraction(d decimal.Decimal) Progress {
	return Progress{fraction: d.Round(2)}
}

func MaxTierReached() Progress {
	return Progress{max: true}
}

func (p Progress) IsMaxTier() bool {
	return p.max
}

// Value возвращает долю; для максимального уровня 1
func (p Progress) Value() float64 {
	if p.max {
		return 1
	}
	return p.fraction.InexactFloat64()
}

func (p Progress) String() string {
	if p.max {
		return "1"
	}
	return p.fraction.StringFixed(2)
}

func (p Progress) MarshalJSON() ([]byte, error) {
	if p.max {
		return []byte("1"), nil
	}
	return json.Marshal(p.String())
}

func (p *Progress) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return p.parse(s)
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	p.fromNumber(f)
	return nil
}

func (p Progress) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if p.max {
		return bson.MarshalValue(int32(1))
	}
	return bson.MarshalValue(p.String())
}

func (p *Progress) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		return p.parse(raw.StringValue())
	case bsontype.Int32:
		p.fromNumber(float64(raw.Int32()))
	case bsontype.Int64:
		p.fromNumber(float64(raw.Int64()))
	case bsontype.Double:
		p.fromNumber(raw.Double())
	case bsontype.Null:
		*p = Progress{}
	default:
		return fmt.Errorf("progress: unexpected bson type %s", t)
	}
	return nil
}

func (p *Progress) parse(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	*p = Fraction(d)
	return nil
}

// числом хранится только признак максимального уровня
func (p *Progress) fromNumber(f float64) {
	if f == 1 {
		*p = MaxTierReached()
		return
	}
	*p = Fraction(decimal.NewFromFloat(f))
}
