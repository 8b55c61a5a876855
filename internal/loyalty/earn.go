package loyalty

import "github.com/shopspring/decimal"

// EarnPoints previews the points an order earns: floor(subTotalWithTax * rate).
func EarnPoints(subTotalWithTax int64, rate decimal.Decimal) int {
	if subTotalWithTax <= 0 || rate.Sign() <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(subTotalWithTax).Mul(rate).Floor().IntPart())
}
