package common

import (
	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places between a currency's major and
// minor unit. Stripe uses 2 for usd.
const minorUnitExponent = 2

// ToMinorUnits converts a major-unit amount (e.g. dollars) to minor units (cents),
// rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(minorUnitExponent).Round(0).IntPart()
}

// FromMinorUnits converts a minor-unit amount back to major units.
func FromMinorUnits(amount int64) float64 {
	return decimal.New(amount, -minorUnitExponent).InexactFloat64()
}

// FormatMajorUnits renders an amount the way it is shown on the checkout line item.
func FormatMajorUnits(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).String()
}
