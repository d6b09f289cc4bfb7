package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/message"
)

var arabicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// FormatDate renders the calendar date of t the way a browser's default
// short date does: month/day/year for English and day/month/year with
// Arabic-Indic digits for Arabic.
func FormatDate(t time.Time, lang Lang) string {
	if lang == Arabic {
		return arabicDigits.Replace(t.Format("2/1/2006"))
	}
	return t.Format("1/2/2006")
}

// FormatNumber renders an integer with the grouping of the locale.
func FormatNumber(n int, lang Lang) string {
	return message.NewPrinter(lang.Tag()).Sprintf("%d", n)
}

// FormatDecimal renders f with one fractional digit in the locale.
func FormatDecimal(f float64, lang Lang) string {
	return message.NewPrinter(lang.Tag()).Sprintf("%.1f", f)
}
