package dialog

import (
	"farebot/app/service/trip"
)

// Parameters is the typed view of one turn's extracted parameters. The
// platform sends absent optional parameters as empty strings or empty
// objects, both count as unset here.
type Parameters struct {
	Destination  string
	Date         string
	Period       *trip.DateRange
	PeriodFromTo *trip.DateRange
	Duration     *trip.Duration
}

func parseParameters(raw map[string]any) Parameters {
	return Parameters{
		Destination:  stringParam(raw, "destination"),
		Date:         stringParam(raw, "date"),
		Period:       rangeParam(raw, "period"),
		PeriodFromTo: rangeParam(raw, "period_fromto"),
		Duration:     durationParam(raw, "duration"),
	}
}

// snapshot flattens the temporal parameters back into the wire shape used
// for context persistence. Destination is deliberately left out, a follow-up
// turn always brings its own.
func (p Parameters) snapshot() map[string]any {
	out := map[string]any{
		"date":          p.Date,
		"period":        rangeValue(p.Period),
		"period_fromto": rangeValue(p.PeriodFromTo),
		"duration":      durationValue(p.Duration),
	}

	return out
}

func (p Parameters) resolutionInput() trip.ResolutionInput {
	return trip.ResolutionInput{
		Date:         p.Date,
		Period:       p.Period,
		PeriodFromTo: p.PeriodFromTo,
		Duration:     p.Duration,
	}
}

func stringParam(raw map[string]any, key string) string {
	value, _ := raw[key].(string)
	return value
}

func rangeParam(raw map[string]any, key string) *trip.DateRange {
	object, ok := raw[key].(map[string]any)
	if !ok {
		return nil
	}

	result := trip.DateRange{
		StartDate: stringParam(object, "startDate"),
		EndDate:   stringParam(object, "endDate"),
	}
	if result.StartDate == "" && result.EndDate == "" {
		return nil
	}

	return &result
}

func durationParam(raw map[string]any, key string) *trip.Duration {
	object, ok := raw[key].(map[string]any)
	if !ok {
		return nil
	}

	unit, _ := object["unit"].(string)
	amount, _ := object["amount"].(float64)
	if unit == "" {
		return nil
	}

	return &trip.Duration{Amount: amount, Unit: unit}
}

func rangeValue(r *trip.DateRange) any {
	if r == nil {
		return ""
	}

	return map[string]any{
		"startDate": r.StartDate,
		"endDate":   r.EndDate,
	}
}

func durationValue(d *trip.Duration) any {
	if d == nil {
		return ""
	}

	return map[string]any{
		"amount": d.Amount,
		"unit":   d.Unit,
	}
}
