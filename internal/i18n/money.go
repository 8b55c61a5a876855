package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money is a formatted amount for the view layer.
type Money struct {
	Amount       int64  `json:"amount"`
	CurrencyCode string `json:"currency_code"`
	Formatted    string `json:"formatted"`
}

// NewMoney pairs minor units with their formatted rendering.
func NewMoney(locale, currencyCode string, minor int64) Money {
	return Money{
		Amount:       minor,
		CurrencyCode: currencyCode,
		Formatted:    FormatMoney(locale, currencyCode, minor),
	}
}

// FormatMoney renders minor units with the currency's standard scale and the
// locale's digit grouping, prefixed by the narrow currency symbol. Unknown
// locales format as English; unknown currencies fall back to "12.34 XYZ".
func FormatMoney(locale, currencyCode string, minor int64) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return decimal.New(minor, -2).StringFixed(2) + " " + currencyCode
	}
	scale, _ := currency.Standard.Rounding(unit)

	abs := minor
	sign := ""
	if minor < 0 {
		abs = -minor
		sign = "-"
	}
	amount := decimal.New(abs, -int32(scale))

	p := message.NewPrinter(tag)
	digits := p.Sprint(number.Decimal(amount.InexactFloat64(), number.Scale(scale)))
	symbol := p.Sprint(currency.NarrowSymbol(unit))
	return sign + symbol + digits
}

// MinorUnitScale returns the number of fraction digits for a currency (2 for
// USD, 0 for KRW); unknown currencies report 2.
func MinorUnitScale(currencyCode string) int {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}
