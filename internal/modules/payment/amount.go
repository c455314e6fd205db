package payment

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("amount must not be negative")
	ErrAmountTooLarge = errors.New("amount exceeds the largest chargeable value")
)

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a price in currency units to integer cents. The
// price is first rounded half away from zero to two decimal places, so
// 10.005 becomes 1001 and 19.99 becomes exactly 1999.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	if price.IsNegative() {
		return 0, ErrInvalidAmount
	}
	cents := price.Round(2).Mul(hundred)
	if !cents.BigInt().IsInt64() {
		return 0, ErrAmountTooLarge
	}
	return cents.IntPart(), nil
}
