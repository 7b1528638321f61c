package model

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyLKR Currency = "LKR"
	CurrencyINR Currency = "INR"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
)

var ValidCurrencies = []Currency{
	CurrencyUSD, CurrencyLKR, CurrencyINR, CurrencyCAD, CurrencyAUD,
}

func (c Currency) IsValid() bool {
	for _, v := range ValidCurrencies {
		if c == v {
			return true
		}
	}
	return false
}
