package format

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enUS = message.NewPrinter(language.AmericanEnglish)

// LongDate renders a date the way the frontend displays it: "March 5, 2024".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Money renders an amount with grouping separators and two decimals,
// e.g. 85000 -> "85,000.00".
func Money(v float64) string {
	return enUS.Sprintf("%.2f", v)
}

// Grouped renders a salary figure with grouping separators and no forced
// decimals, e.g. 85000 -> "85,000".
func Grouped(v float64) string {
	if v == math.Trunc(v) {
		return enUS.Sprintf("%d", int64(v))
	}
	return enUS.Sprintf("%v", v)
}
