// Package format renders numbers and labels for display.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var titleCaser = cases.Title(language.English)

// Number groups digits the en-US way: 1234567 -> "1,234,567".
func Number(n int64) string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n)
}

// Currency prefixes a grouped amount with a dollar sign.
func Currency(n int64) string {
	if n < 0 {
		return "-$" + Number(-n)
	}
	return "$" + Number(n)
}

// Change renders the magnitude of a percentage change: -3.2 -> "3.2%".
func Change(pct float64) string {
	return strconv.FormatFloat(math.Abs(pct), 'f', -1, 64) + "%"
}

// Trend names the direction of a change. Zero counts as an increase.
func Trend(pct float64) string {
	if pct >= 0 {
		return "Increased"
	}
	return "Decreased"
}

// Title title-cases a status or label: "pending" -> "Pending".
func Title(s string) string {
	return titleCaser.String(s)
}
