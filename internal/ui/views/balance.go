package views

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
	"github.com/hance08/sats/internal/model"
	"github.com/hance08/sats/internal/ui"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

func RenderBalance(name string, balance int64, dashWidth int) {
	pterm.Println()
	pterm.Info.Printf("%s bitcoin balance: SATS %s\n", name, humanize.Comma(balance))
	ui.Separator(dashWidth)
}

func RenderConversion(conv model.Conversion, dashWidth int) {
	pterm.Println()
	pterm.Info.Printf("Your SATS %s balance is worth: %s\n", humanize.Comma(conv.Sats), FormatFiat(conv.Currency, conv.Value))
	if conv.Cached {
		pterm.Println(pterm.Gray("(cached exchange rate)"))
	}
	ui.Separator(dashWidth)
}

// FormatFiat renders value with the currency's own symbol and fraction when
// the code is a known ISO currency, and as "CODE 1,235" otherwise.
func FormatFiat(code string, value decimal.Decimal) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%s %s", code, humanize.Comma(value.Round(0).IntPart()))
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := value.Mul(factor).Round(0).IntPart()
	return fmt.Sprintf("%s (%s)", money.New(minor, cur.Code).Display(), cur.Code)
}
