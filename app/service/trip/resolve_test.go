package trip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farebot/app/service/trip"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveDates_NothingSpecified(t *testing.T) {
	resolved, err := trip.ResolveDates(trip.ResolutionInput{}, day("2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, "2024-01-04", resolved.DepartureDate)
	assert.Equal(t, "2024-01-14", resolved.ReturnDate)
}

func TestResolveDates_ExactDate(t *testing.T) {
	resolved, err := trip.ResolveDates(trip.ResolutionInput{
		Date: "2024-03-15T00:00:00Z",
	}, day("2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", resolved.DepartureDate)
	assert.Equal(t, "2024-03-25", resolved.ReturnDate)
}

func TestResolveDates_ExactDate_TruncatesOffset(t *testing.T) {
	// The zone offset must not shift the calendar day.
	resolved, err := trip.ResolveDates(trip.ResolutionInput{
		Date: "2024-03-15T23:30:00+02:00",
	}, day("2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", resolved.DepartureDate)
}

func TestResolveDates_ExplicitRange(t *testing.T) {
	resolved, err := trip.ResolveDates(trip.ResolutionInput{
		PeriodFromTo: &trip.DateRange{
			StartDate: "2024-07-06T12:00:00Z",
			EndDate:   "2024-08-16T12:00:00Z",
		},
		// Duration is ignored when an explicit range is given.
		Duration: &trip.Duration{Amount: 2, Unit: "day"},
	}, day("2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, "2024-07-06", resolved.DepartureDate)
	assert.Equal(t, "2024-08-16", resolved.ReturnDate)
}

func TestResolveDates_FuturePeriod(t *testing.T) {
	resolved, err := trip.ResolveDates(trip.ResolutionInput{
		Period: &trip.DateRange{
			StartDate: "2024-09-01T00:00:00Z",
			EndDate:   "2024-09-30T23:59:59Z",
		},
	}, day("2024-08-01"))
	require.NoError(t, err)

	assert.Equal(t, "2024-09-01", resolved.DepartureDate)
	assert.Equal(t, "2024-09-11", resolved.ReturnDate)
}

func TestResolveDates_PeriodAlreadyBegun(t *testing.T) {
	// "in August" said on the 20th of August: departure lands at the
	// midpoint of the remaining window.
	resolved, err := trip.ResolveDates(trip.ResolutionInput{
		Period: &trip.DateRange{
			StartDate: "2019-08-01T00:00:00Z",
			EndDate:   "2019-08-30T23:59:59Z",
		},
	}, day("2019-08-20"))
	require.NoError(t, err)

	assert.Equal(t, "2019-08-25", resolved.DepartureDate)
	assert.Equal(t, "2019-09-04", resolved.ReturnDate)
}

func TestResolveDates_PeriodAlreadyBegun_AcrossMonthBoundary(t *testing.T) {
	// Remaining window runs into the next month, the midpoint must still be
	// computed with real calendar arithmetic.
	resolved, err := trip.ResolveDates(trip.ResolutionInput{
		Period: &trip.DateRange{
			StartDate: "2024-08-01T00:00:00Z",
			EndDate:   "2024-09-03T23:59:59Z",
		},
	}, day("2024-08-28"))
	require.NoError(t, err)

	assert.Equal(t, "2024-08-31", resolved.DepartureDate)
}

func TestResolveDates_DurationOverridesStay(t *testing.T) {
	resolved, err := trip.ResolveDates(trip.ResolutionInput{
		Date:     "2024-03-15T00:00:00Z",
		Duration: &trip.Duration{Amount: 1, Unit: "week"},
	}, day("2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", resolved.DepartureDate)
	assert.Equal(t, "2024-03-22", resolved.ReturnDate)
}

func TestResolveDates_SubDayDurationClampsToOneNight(t *testing.T) {
	resolved, err := trip.ResolveDates(trip.ResolutionInput{
		Date:     "2024-03-15T00:00:00Z",
		Duration: &trip.Duration{Amount: 5, Unit: "hour"},
	}, day("2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15", resolved.DepartureDate)
	assert.Equal(t, "2024-03-16", resolved.ReturnDate)
}

func TestResolveDates_AmbiguousInput(t *testing.T) {
	_, err := trip.ResolveDates(trip.ResolutionInput{
		Date: "2024-03-15T00:00:00Z",
		Period: &trip.DateRange{
			StartDate: "2024-09-01T00:00:00Z",
			EndDate:   "2024-09-30T23:59:59Z",
		},
	}, day("2024-01-01"))

	assert.ErrorIs(t, err, trip.ErrAmbiguousInput)
}

func TestResolveDates_UnknownUnitSurfaces(t *testing.T) {
	_, err := trip.ResolveDates(trip.ResolutionInput{
		Duration: &trip.Duration{Amount: 2, Unit: "lightyear"},
	}, day("2024-01-01"))

	assert.ErrorIs(t, err, trip.ErrUnknownUnit)
}

func TestResolveDates_ReturnAlwaysAfterDeparture(t *testing.T) {
	inputs := []trip.ResolutionInput{
		{},
		{Date: "2024-03-15T00:00:00Z"},
		{PeriodFromTo: &trip.DateRange{StartDate: "2024-07-06T00:00:00Z", EndDate: "2024-07-06T00:00:00Z"}},
		{Period: &trip.DateRange{StartDate: "2024-09-01T00:00:00Z", EndDate: "2024-09-30T00:00:00Z"}},
		{Date: "2024-03-15T00:00:00Z", Duration: &trip.Duration{Amount: 30, Unit: "s"}},
	}

	now := day("2024-06-10")
	for _, in := range inputs {
		resolved, err := trip.ResolveDates(in, now)
		require.NoError(t, err)

		departure := day(resolved.DepartureDate)
		ret := day(resolved.ReturnDate)
		assert.True(t, ret.After(departure), "return %s must be after departure %s", resolved.ReturnDate, resolved.DepartureDate)
	}
}

func TestResolveDates_Idempotent(t *testing.T) {
	in := trip.ResolutionInput{
		Period: &trip.DateRange{
			StartDate: "2024-09-01T00:00:00Z",
			EndDate:   "2024-09-30T23:59:59Z",
		},
		Duration: &trip.Duration{Amount: 2, Unit: "week"},
	}
	now := day("2024-08-01")

	first, err := trip.ResolveDates(in, now)
	require.NoError(t, err)
	second, err := trip.ResolveDates(in, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
