package piechart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// decimalFormatter renders values in decimal style with at most one fraction
// digit, trailing zeros stripped, using the locale's separators.
type decimalFormatter struct {
	p *message.Printer
}

var defaultFormatter = NewFormatter(language.AmericanEnglish)

// NewFormatter returns the label value formatter for the given locale.
func NewFormatter(tag language.Tag) ValueFormatter {
	return decimalFormatter{p: message.NewPrinter(tag)}
}

func (f decimalFormatter) Format(v float64) string {
	return f.p.Sprint(number.Decimal(v,
		number.MinFractionDigits(0),
		number.MaxFractionDigits(1),
	))
}
