package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultScale is the number of fraction digits kept for amounts when no
// currency-specific scale is configured.
const DefaultScale int32 = 2

var minorUnits = map[string]int32{
	"BHD": 3, "JOD": 3, "KWD": 3, "OMR": 3, "TND": 3,
	"CLP": 0, "ISK": 0, "JPY": 0, "KRW": 0, "VND": 0,
}

// MinorUnits returns the ISO 4217 number of fraction digits for currency,
// DefaultScale when it is not one of the exceptions.
func MinorUnits(currency string) int32 {
	if n, ok := minorUnits[strings.ToUpper(currency)]; ok {
		return n
	}
	return DefaultScale
}

type Money struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

func New(currency string, amount decimal.Decimal) Money {
	return Money{Currency: currency, Amount: amount}
}

func Zero(currency string) Money {
	return Money{Currency: currency, Amount: decimal.Zero}
}

// Times multiplies the amount by an integral quantity.
func (m Money) Times(qty int) Money {
	return Money{Currency: m.Currency, Amount: m.Amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// Add sums two amounts of the same currency. Mixing currencies is a programming
// error and panics.
func (m Money) Add(o Money) Money {
	if m.Currency != o.Currency {
		panic(fmt.Sprintf("money: currency mismatch %q vs %q", m.Currency, o.Currency))
	}
	return Money{Currency: m.Currency, Amount: m.Amount.Add(o.Amount)}
}

// Round rounds half away from zero to the given number of fraction digits.
func (m Money) Round(scale int32) Money {
	return Money{Currency: m.Currency, Amount: m.Amount.Round(scale)}
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) Equal(o Money) bool {
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}

func (m Money) Format(scale int32) string {
	return m.Currency + " " + m.Amount.StringFixed(scale)
}

func (m Money) String() string {
	return m.Format(DefaultScale)
}

// Sum adds the amounts in order. An empty input yields zero in the given currency.
func Sum(currency string, amounts ...Money) Money {
	total := Zero(currency)
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
