// Package currency converts base-currency amounts for display.
// Stored amounts are always UGX; nothing here is ever persisted.
package currency

import (
	"fmt"
	"strings"

	"github.com/and161185/clubhouse/internal/errs"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Currency string

const (
	UGX Currency = "UGX"
	USD Currency = "USD"

	Base = UGX
)

// Rate is UGX per one USD.
var Rate = decimal.NewFromInt(3700)

func Parse(code string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(code))); c {
	case "":
		return Base, nil
	case UGX, USD:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unsupported currency %q", errs.ErrValidation, code)
	}
}

// Convert maps a base amount into target. Unknown targets are treated as the base.
func Convert(amountInBase int64, target Currency) decimal.Decimal {
	amount := decimal.NewFromInt(amountInBase)
	if target == USD {
		return amount.Div(Rate)
	}
	return amount
}

// ToBase is the inverse of Convert.
func ToBase(amount decimal.Decimal, from Currency) decimal.Decimal {
	if from == USD {
		return amount.Mul(Rate)
	}
	return amount
}

var printer = message.NewPrinter(language.English)

func FormatMoney(amountInBase int64, target Currency) string {
	val := Convert(amountInBase, target)
	if target == USD {
		return "$" + printer.Sprintf("%.2f", val.Round(2).InexactFloat64())
	}
	return "UGX " + printer.Sprintf("%d", val.Round(0).IntPart())
}
