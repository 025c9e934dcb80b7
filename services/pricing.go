package services

import (
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest value a decimal(6,2) currency column holds.
var MaxAmount = decimal.RequireFromString("9999.99")

// LinePrice returns unit x qty truncated to the currency's minor unit.
func LinePrice(unit decimal.Decimal, qty int) (decimal.Decimal, error) {
	if qty < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	p := unit.Mul(decimal.NewFromInt(int64(qty))).Truncate(2)
	if p.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrAmountOverflow
	}
	return p, nil
}

// OrderTotal sums line prices.
func OrderTotal(lines []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range lines {
		total = total.Add(p)
	}
	return total
}
