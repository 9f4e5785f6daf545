package fixture

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrAmountRange is returned for amounts whose satoshi value does not fit
// in an int64.
var ErrAmountRange = errors.New("amount out of range")

var (
	// satsPerCoin is the number of smallest units in one coin.
	satsPerCoin = decimal.New(1, 8)

	maxSats = decimal.NewFromInt(math.MaxInt64)
	minSats = decimal.NewFromInt(math.MinInt64)
)

// U2SAT converts a coin amount to satoshis, truncating any fraction of a
// satoshi toward zero. The amount must be within ±92233720368.54775807
// coins; U2SAT panics outside that range rather than wrap.
func U2SAT(v decimal.Decimal) int64 {
	sats, err := toSats(v)
	if err != nil {
		panic(err)
	}
	return sats
}

// ParseU2SAT is U2SAT for a textual amount such as "0.0015". Out of range
// amounts fail with ErrAmountRange.
func ParseU2SAT(s string) (int64, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return toSats(v)
}

func toSats(v decimal.Decimal) (int64, error) {
	scaled := v.Mul(satsPerCoin).Truncate(0)
	if scaled.GreaterThan(maxSats) || scaled.LessThan(minSats) {
		return 0, fmt.Errorf("%w: %s", ErrAmountRange, v)
	}
	return scaled.IntPart(), nil
}

// SAT2U converts satoshis back to a coin amount.
func SAT2U(sats int64) decimal.Decimal {
	return decimal.New(sats, -8)
}
