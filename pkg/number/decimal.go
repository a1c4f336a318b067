package number

import (
	"github.com/shopspring/decimal"
)

// Percent render a basis point rate as a percentage
func Percent(bps uint64) decimal.Decimal {
	return decimal.New(int64(bps), -2)
}
