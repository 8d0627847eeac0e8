package response

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// money renders an amount as a JSON number with exactly two decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
