package model

// Currency is an ISO 4217 code from the closed set the app supports.
// A document carries exactly one currency; no conversion occurs.
type Currency string

// Supported currency codes.
const (
	KES Currency = "KES"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	CHF Currency = "CHF"
	CNY Currency = "CNY"
	INR Currency = "INR"
)

// DefaultCurrency is used when no preference has been stored.
const DefaultCurrency = KES

// Currencies lists every supported code in display order.
func Currencies() []Currency {
	return []Currency{KES, USD, EUR, GBP, JPY, CAD, AUD, CHF, CNY, INR}
}

// Valid reports whether c is one of the supported codes.
func (c Currency) Valid() bool {
	for _, v := range Currencies() {
		if c == v {
			return true
		}
	}
	return false
}
