package dashboard

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
)

// DefaultCurrency is the currency the backend's amounts are recorded in.
const DefaultCurrency = "INR"

// ValidCurrency reports whether code is an ISO currency go-money knows.
func ValidCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// FormatAmount renders amount with the currency symbol and two decimals.
func FormatAmount(amount float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	cents := int64(math.Round(amount * 100))
	return money.New(cents, strings.ToUpper(currency)).Display()
}

// FormatSigned renders amount with an explicit "+" for income and "-" for
// expenses.
func FormatSigned(amount float64, income bool, currency string) string {
	s := FormatAmount(math.Abs(amount), currency)
	if income {
		return "+" + s
	}
	return "-" + s
}
