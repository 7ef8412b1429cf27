package utils

import "github.com/shopspring/decimal"

// MoneyPlaces is the precision of INR amounts shown to the user.
const MoneyPlaces = 2

// RoundMoney rounds an amount half away from zero to MoneyPlaces.
// Example: 149.995 returns 150.00
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// FormatWithPrecision formats an amount with the given precision, keeping trailing zeros.
// Example: amount 84.1 with precision 2 returns "84.10"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney formats an amount with MoneyPlaces.
func FormatMoney(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, MoneyPlaces)
}
