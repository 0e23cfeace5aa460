package service

import (
	"strings"
	"unicode"

	"rik-restaurant/restaurant-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var TaxRate = decimal.RequireFromString("0.08")

// ParsePrice strips the leading currency symbol from a stored price such as
// "$16.99". Unparseable prices count as zero.
func ParsePrice(price string) decimal.Decimal {
	numeric := strings.TrimLeftFunc(strings.TrimSpace(price), func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != '-'
	})
	d, err := decimal.NewFromString(strings.TrimSpace(numeric))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func Subtotal(lines []domain.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(ParsePrice(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

func Tax(lines []domain.CartLine) decimal.Decimal {
	return Subtotal(lines).Mul(TaxRate).Round(2)
}

func Total(lines []domain.CartLine) decimal.Decimal {
	return Subtotal(lines).Add(Tax(lines))
}

func ItemCount(lines []domain.CartLine) int {
	n := 0
	for _, line := range lines {
		n += line.Quantity
	}
	return n
}

func Summarize(identity string, lines []domain.CartLine) domain.CartSummary {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return domain.CartSummary{
		Identity:  identity,
		Lines:     lines,
		ItemCount: ItemCount(lines),
		Subtotal:  Subtotal(lines),
		Tax:       Tax(lines),
		Total:     Total(lines),
	}
}
