// Package money holds the monetary conversion and display formatting used
// by the catalog view models.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is assumed when a response record carries no currency id.
const DefaultCurrency = "BRL"

// Currencies conventionally displayed without cents.
var noCentsCurrencies = map[string]bool{
	"ARS": true,
}

var localeARS = language.MustParse("es-AR")

// Monetary converts a floating-point amount from the wire into an exact
// 2-decimal value. Rounding is half-even so repeated aggregation does not
// drift in one direction.
func Monetary(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).RoundBank(2)
}

// MonetaryPtr is the pointer form used on optional wire fields: nil in,
// nil out.
func MonetaryPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := Monetary(*v)
	return &d
}

// CurrencyString renders a localized currency display string. An empty or
// unrecognized currency id falls back to BRL. ARS amounts use the es-AR
// locale with no fractional digits; everything else uses pt-BR with the
// standard two.
func CurrencyString(amount decimal.Decimal, currencyID string) string {
	if currencyID == "" {
		currencyID = DefaultCurrency
	}
	unit, err := currency.ParseISO(currencyID)
	if err != nil {
		unit = currency.BRL
		currencyID = DefaultCurrency
	}

	loc := language.BrazilianPortuguese
	scale := 2
	if noCentsCurrencies[currencyID] {
		loc = localeARS
		scale = 0
	}

	f, _ := amount.Float64()
	p := message.NewPrinter(loc)
	return p.Sprintf("%v %v", currency.Symbol(unit), number.Decimal(f, number.Scale(scale)))
}
