package reltime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oakcask/git-toolbox/internal/reltime"
)

func TestParse_SingleTokenSpellings(t *testing.T) {
	for _, input := range []string{"1d", "1day", "1days", "1 d", "1 day", "1 days"} {
		p, err := reltime.Parse(input)
		require.NoError(t, err, input)
		require.Equal(t, reltime.Period{Days: 1}, p, input)
	}
}

func TestParse_WeeksFoldIntoMonthsAtFour(t *testing.T) {
	p, err := reltime.Parse("4 weeks")
	require.NoError(t, err)
	require.Equal(t, reltime.Period{Months: 1, Days: 0}, p)

	p, err = reltime.Parse("8 weeks")
	require.NoError(t, err)
	require.Equal(t, reltime.Period{Months: 2, Days: 0}, p)

	// Bare days never fold into weeks.
	p, err = reltime.Parse("28 days")
	require.NoError(t, err)
	require.Equal(t, reltime.Period{Days: 28}, p)
}

func TestParse_MonthsFoldYearsAtTwelve(t *testing.T) {
	p, err := reltime.Parse("12mo")
	require.NoError(t, err)
	require.Equal(t, reltime.Period{Months: 12}, p)

	p, err = reltime.Parse("1y")
	require.NoError(t, err)
	require.Equal(t, reltime.Period{Months: 12}, p)
}

func TestParse_AnyOrderAndDuplicatesSum(t *testing.T) {
	p, err := reltime.Parse("1w 1w 2d")
	require.NoError(t, err)
	require.Equal(t, reltime.Period{Days: 16}, p) // 2 weeks = 14 days, +2

	p, err = reltime.Parse("1d1mo")
	require.NoError(t, err)
	require.Equal(t, reltime.Period{Months: 1, Days: 1}, p)
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "not a period", "1", "d1"} {
		_, err := reltime.Parse(input)
		require.Error(t, err, input)
	}
}

func mustParse(t *testing.T, s string) reltime.Period {
	t.Helper()
	p, err := reltime.Parse(s)
	require.NoError(t, err)
	return p
}

func mustRFC3339(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tm
}

func TestBefore_MatchesWorkedExamples(t *testing.T) {
	cases := []struct{ now, period, want string }{
		{"2022-01-01T00:00:00+09:00", "1d", "2021-12-31T00:00:00+09:00"},
		{"2022-01-28T00:00:00+09:00", "28 days", "2021-12-31T00:00:00+09:00"},
		{"2022-03-07T00:00:00+09:00", "1w", "2022-02-28T00:00:00+09:00"},
		{"2022-01-01T00:00:00+09:00", "1mo", "2021-12-01T00:00:00+09:00"},
		{"2022-02-28T00:00:00+09:00", "4 weeks", "2022-01-28T00:00:00+09:00"},
		{"2022-02-28T00:00:00+09:00", "8 weeks", "2021-12-28T00:00:00+09:00"},
		{"2000-02-29T00:00:00+09:00", "1y", "1999-02-28T00:00:00+09:00"},
		{"2000-02-29T00:00:00+09:00", "12mo", "1999-02-28T00:00:00+09:00"},
	}

	for _, c := range cases {
		now := mustRFC3339(t, c.now)
		want := mustRFC3339(t, c.want)
		period := mustParse(t, c.period)

		got := reltime.Before(now, period)
		require.True(t, want.Equal(got), "Before(%s, %s) = %s, want %s", c.now, c.period, got, want)
	}
}
