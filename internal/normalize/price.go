package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// currencyChars matches the Naira symbol, the NGN currency code, and
// whitespace, all of which are stripped before the digit scan.
var currencyChars = regexp.MustCompile(`[₦\sNG]`)

// digitRun is the first run of digits with optional grouping commas.
var digitRun = regexp.MustCompile(`[\d,]+`)

// Price resolves raw price text into a whole-unit amount. Empty text or any
// text containing "free" (case-insensitive) is a free event. Otherwise the
// currency symbols and whitespace are stripped, the first digit run is
// parsed base-10 with grouping commas removed, and a text with no digits at
// all defaults to zero.
func Price(raw string) (amount int, free bool) {
	if raw == "" || strings.Contains(strings.ToLower(raw), "free") {
		return 0, true
	}

	clean := currencyChars.ReplaceAllString(raw, "")
	match := digitRun.FindString(clean)
	if match == "" {
		return 0, false
	}

	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, false
}
