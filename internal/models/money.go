package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers, e.g. 1500.5 rather than "1500.5".
	decimal.MarshalJSONWithoutQuotes = true
}
