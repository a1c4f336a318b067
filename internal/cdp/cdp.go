package cdp

import (
	"bondcdp/pkg/number"
)

const (
	// BondUnitValue fixed notional value of one collateral unit
	BondUnitValue uint64 = 1000
	// MarginPercent haircut applied to collateral value before borrowing
	MarginPercent uint64 = 5

	// SecondsPerYear ordinary interest over a 365 day year, leap years
	// are not special cased
	SecondsPerYear uint64 = 365 * 24 * 3600

	bpsBase uint64 = 10000
)

// Mintable returns the debt ceiling authorized by a single deposit of
// unitCount collateral units.
//
// The ceiling is valued per deposit, not against the vault's cumulative
// collateral balance.
func Mintable(unitCount uint64) (uint64, bool) {
	return number.MulDiv3(BondUnitValue, unitCount, 100-MarginPercent, 100)
}

// Interest returns floor(borrowed * rateBps * elapsed / (10000 * seconds per year)),
// the ordinary interest owed on borrowed over elapsed seconds.
func Interest(borrowed, rateBps, elapsed uint64) (uint64, bool) {
	return number.MulDiv3(borrowed, rateBps, elapsed, bpsBase*SecondsPerYear)
}
