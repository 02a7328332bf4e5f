package currency

import (
	"fmt"
	"strings"
)

const symbol = "EGP"

// Format renders an amount as "EGP 1,234.50". When arabic is true the digits
// are transliterated to Arabic-Indic numerals for the RTL display mode.
func Format(amount float64, arabic bool) string {
	formatted := fmt.Sprintf("%s %s", symbol, withGrouping(amount))
	if arabic {
		return ToArabicNumerals(formatted)
	}
	return formatted
}

// FormatAmount renders a bare amount with two decimals, as written into CSV
// exports.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatClock renders whole seconds as HH:MM:SS for the dashboard timers.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}

// withGrouping formats with two decimals and comma thousands separators.
func withGrouping(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

var (
	toArabic   = strings.NewReplacer(pairs("0123456789", "٠١٢٣٤٥٦٧٨٩")...)
	fromArabic = strings.NewReplacer(pairs("٠١٢٣٤٥٦٧٨٩", "0123456789")...)
)

// ToArabicNumerals swaps Western digits for Arabic-Indic ones.
func ToArabicNumerals(text string) string {
	return toArabic.Replace(text)
}

// FromArabicNumerals is the exact inverse of ToArabicNumerals.
func FromArabicNumerals(text string) string {
	return fromArabic.Replace(text)
}

func pairs(from, to string) []string {
	src := []rune(from)
	dst := []rune(to)
	out := make([]string, 0, len(src)*2)
	for i := range src {
		out = append(out, string(src[i]), string(dst[i]))
	}
	return out
}
