package trip

import (
	"errors"
	"fmt"
)

var ErrUnknownUnit = errors.New("unknown duration unit")

// NormalizeDuration converts a duration expression into a number of days.
// Units come in both canonical form and the dialogue platform's short form
// ("wk", "mo", "h", "min", "s"). Months are a flat 30-day approximation, not
// calendar-aware. The result may be fractional, callers must tolerate that.
func NormalizeDuration(amount float64, unit string) (float64, error) {
	switch unit {
	case "day", "days":
		return amount, nil
	case "week", "weeks", "wk":
		return amount * 7, nil
	case "month", "months", "mo":
		return amount / 30, nil
	case "hour", "hours", "h":
		return amount / 24, nil
	case "minute", "minutes", "min":
		return amount / 1440, nil
	case "second", "seconds", "s":
		return amount / 86400, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}
