// Package format holds the locale-aware price helpers shared by the
// storefront renderer and the WhatsApp message builder.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The storefront displays Colombian pesos: dot-grouped thousands, no
// fraction digits.
var printer = message.NewPrinter(language.MustParse("es-CO"))

// Price formats a price for display, rounding to whole units with es-CO
// digit grouping: 15000 -> "15.000". Non-positive values render as "0".
func Price(value float64) string {
	if value <= 0 || math.IsNaN(value) {
		return "0"
	}
	return printer.Sprintf("%v", number.Decimal(math.Round(value), number.MaxFractionDigits(0)))
}

var grouped = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)

// ParsePrice recovers a numeric price from operator input. Currency symbols
// and spacing are stripped first. Dots forming pure thousands grouping
// ("15.000") are treated as separators so ParsePrice(Price(x)) == x for
// integer x; any other dot is a decimal point. The second return value is
// false when no number remains.
func ParsePrice(input string) (float64, bool) {
	var b strings.Builder
	for _, r := range input {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	if grouped.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
