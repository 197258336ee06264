package numfmt

import "strings"

// MaxRoman is the largest number expressible without overlines
const MaxRoman = 3999

var numerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(n int) string {
	var b strings.Builder
	for _, r := range numerals {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}

// fromRoman reads a canonical numeral; re-encoding must reproduce it
func fromRoman(s string) (int, bool) {
	s = strings.ToUpper(s)
	if s == "" {
		return 0, false
	}

	n, rest := 0, s
	for _, r := range numerals {
		for strings.HasPrefix(rest, r.symbol) {
			n += r.value
			rest = rest[len(r.symbol):]
		}
	}
	if rest != "" || n < 1 || n > MaxRoman || toRoman(n) != s {
		return 0, false
	}
	return n, true
}
