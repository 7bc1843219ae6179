package calc

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Veraticus/money-mastery/internal/model"
)

// Each supported code renders in one fixed locale; this is display
// formatting only, never conversion.
var currencyLocales = map[model.Currency]language.Tag{
	model.KES: language.MustParse("en-KE"),
	model.USD: language.MustParse("en-US"),
	model.EUR: language.MustParse("de-DE"),
	model.GBP: language.MustParse("en-GB"),
	model.JPY: language.MustParse("ja-JP"),
	model.CAD: language.MustParse("en-CA"),
	model.AUD: language.MustParse("en-AU"),
	model.CHF: language.MustParse("de-CH"),
	model.CNY: language.MustParse("zh-CN"),
	model.INR: language.MustParse("en-IN"),
}

// FormatCurrency renders amount in the display locale fixed for the
// given currency code. Codes without a locale mapping render as the raw
// code followed by a two-decimal amount.
func FormatCurrency(amount float64, code model.Currency) string {
	tag, ok := currencyLocales[code]
	if !ok {
		return fmt.Sprintf("%s %.2f", code, amount)
	}

	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}

	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}
