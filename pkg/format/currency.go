// Package format renders monetary amounts for display.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/fintrack/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency describes a display currency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// SupportedCurrencies lists the currencies a profile may select.
var SupportedCurrencies = []Currency{
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
}

var printer = message.NewPrinter(language.English)

// LookupCurrency finds a supported currency by its ISO code, ignoring case.
func LookupCurrency(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range SupportedCurrencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// SymbolFor returns the display symbol for a currency code, falling back to
// the default currency symbol for unknown codes.
func SymbolFor(code string) string {
	if c, ok := LookupCurrency(code); ok {
		return c.Symbol
	}
	return constants.DefaultCurrencySymbol
}

// Amount returns a currency string using the default symbol, e.g. "₱1,234.56".
func Amount(amount float64) string {
	return CurrencyWithSymbol(amount, constants.DefaultCurrencySymbol)
}

// CurrencyWithSymbol returns a currency string with the given symbol and
// thousands separators (e.g., "-$1,234.56"). Halves round up.
func CurrencyWithSymbol(amount float64, symbol string) string {
	switch {
	case math.IsNaN(amount):
		return symbol + "NaN"
	case math.IsInf(amount, 1):
		return symbol + "∞"
	case math.IsInf(amount, -1):
		return "-" + symbol + "∞"
	}

	formatted := formatPositive(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// Numeric returns the amount with separators but no symbol (e.g., "-1,234.56").
func Numeric(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return CurrencyWithSymbol(amount, "")
	}
	formatted := formatPositive(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-" + formatted
	}
	return formatted
}

func formatPositive(value float64) string {
	d := decimal.NewFromFloat(value).Round(constants.CurrencyPlaces)
	fixed := d.StringFixed(constants.CurrencyPlaces)
	decPart := "00"
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		decPart = fixed[idx+1:]
	}
	return printer.Sprintf("%d", d.IntPart()) + "." + decPart
}
