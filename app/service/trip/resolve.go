package trip

import (
	"errors"
	"fmt"
	"time"
)

const (
	// Lead time added to "now" when the user gave no dates at all.
	daysAhead = 3
	// Trip length when the user gave no duration and no return date.
	defaultStayDays = 10

	dayLayout = "2006-01-02"
)

// ErrAmbiguousInput means more than one temporal shape was supplied in a
// single turn, e.g. both an exact date and a period. The supported grammar
// never produces that combination, so it is rejected instead of guessed at.
var ErrAmbiguousInput = errors.New("ambiguous temporal input")

// ResolveDates turns the temporal parameters of a turn into a concrete
// departure/return pair. It is pure: identical input and identical now
// always produce identical output.
func ResolveDates(in ResolutionInput, now time.Time) (Resolved, error) {
	stayDays, err := stayLength(in.Duration)
	if err != nil {
		return Resolved{}, err
	}

	set := 0
	if in.Date != "" {
		set++
	}
	if in.Period != nil {
		set++
	}
	if in.PeriodFromTo != nil {
		set++
	}
	if set > 1 {
		return Resolved{}, ErrAmbiguousInput
	}

	today := truncateToDay(now)

	switch {
	case in.Date != "":
		// "I want to fly to Madrid the 5th of August"
		departure, err := parseDay(in.Date)
		if err != nil {
			return Resolved{}, err
		}

		return makeResolved(departure, departure.AddDate(0, 0, stayDays)), nil

	case in.PeriodFromTo != nil:
		// "I want to fly to Madrid from the 6th July to the 16th August".
		// The range is taken verbatim, any duration parameter is ignored.
		departure, err := parseDay(in.PeriodFromTo.StartDate)
		if err != nil {
			return Resolved{}, err
		}
		ret, err := parseDay(in.PeriodFromTo.EndDate)
		if err != nil {
			return Resolved{}, err
		}

		return makeResolved(departure, ret), nil

	case in.Period != nil:
		// "I want to fly to Madrid in September"
		return resolvePeriod(in.Period, today, stayDays)

	default:
		// "I want to fly to Madrid"
		departure := today.AddDate(0, 0, daysAhead)

		return makeResolved(departure, departure.AddDate(0, 0, stayDays)), nil
	}
}

func resolvePeriod(period *DateRange, today time.Time, stayDays int) (Resolved, error) {
	start, err := parseDay(period.StartDate)
	if err != nil {
		return Resolved{}, err
	}
	end, err := parseDay(period.EndDate)
	if err != nil {
		return Resolved{}, err
	}

	var departure time.Time

	if start.After(today) {
		// The whole period is still ahead, leave on its first day.
		departure = start
	} else {
		// The period has already begun ("in September" said on the 3rd of
		// September). Depart at the midpoint of the remaining window.
		remaining := int(end.Sub(today).Hours() / 24)
		if remaining < 0 {
			remaining = 0
		}

		departure = today.AddDate(0, 0, remaining/2)
	}

	return makeResolved(departure, departure.AddDate(0, 0, stayDays)), nil
}

func stayLength(duration *Duration) (int, error) {
	if duration == nil {
		return defaultStayDays, nil
	}

	days, err := NormalizeDuration(duration.Amount, duration.Unit)
	if err != nil {
		return 0, err
	}

	// Sub-day durations floor to zero, the clamp keeps the trip a real
	// round trip.
	if days < 1 {
		return 1, nil
	}

	return int(days), nil
}

// parseDay takes the YYYY-MM-DD prefix of an ISO-8601 timestamp and parses
// only that. Feeding the full timestamp into the parser can shift the
// calendar day by one once the zone offset is applied.
func parseDay(iso string) (time.Time, error) {
	if len(iso) < len(dayLayout) {
		return time.Time{}, fmt.Errorf("malformed date %q", iso)
	}

	day, err := time.Parse(dayLayout, iso[:len(dayLayout)])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q: %w", iso, err)
	}

	return day, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func makeResolved(departure, ret time.Time) Resolved {
	if !ret.After(departure) {
		ret = departure.AddDate(0, 0, 1)
	}

	return Resolved{
		DepartureDate: departure.Format(dayLayout),
		ReturnDate:    ret.Format(dayLayout),
	}
}
