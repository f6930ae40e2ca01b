package holdings

import "github.com/shopspring/decimal"

// number lists the Go types accepted by the M and Q factories.
type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a count of units held. It carries no currency.
type Quantity struct {
	value decimal.Decimal
}

func Q[T number](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Decimal() decimal.Decimal { return q.value }
func (q Quantity) Equal(p Quantity) bool    { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity  { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) IsPositive() bool         { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool         { return q.value.IsNegative() }
func (q Quantity) String() string           { return q.value.String() }

// MarshalJSON writes the quantity as a bare JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.value.String()), nil
}
