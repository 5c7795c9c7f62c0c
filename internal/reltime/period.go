// Package reltime parses the relative-date grammar used by stale's --since
// flag ("3 days", "2mo 1w", "90d") and applies it as calendar-correct
// arithmetic against a reference time.
package reltime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oakcask/git-toolbox/internal/apperr"
)

// Period is a canonicalized relative offset: whole months (years folded in
// at 12, weeks folded in every 4) plus leftover days (0-3 weeks worth plus
// any bare days). Canonicalizing at parse time means two differently
// spelled inputs that mean the same offset ("4w" and "1mo") compare equal.
type Period struct {
	Months int
	Days   int
}

// tokenRE matches one leading "<number><unit>" token, with optional
// whitespace between the number and the unit. Units are ordered
// longest-alternative-first within each family so Go's leftmost-first
// alternation doesn't stop at a shorter prefix ("y" before "year" would
// otherwise swallow only the "y" of "year" and desync the scan).
var tokenRE = regexp.MustCompile(`^(\d+)\s*(years?|yrs?|y|months?|mo|weeks?|w|days?|d)`)

// Parse parses a relative-date string: one or more "<number><unit>"
// tokens, optionally separated by whitespace ("1d1mo" and "1d 1mo" are
// the same), in any order, with repeated units summed ("1w 1w" means two
// weeks). The unit vocabulary is y/yr/yrs/year/years, mo/month/months,
// w/week/weeks, and d/day/days, matched case-insensitively.
func Parse(input string) (Period, error) {
	s := strings.ToLower(input)
	var years, months, weeks, days int64
	sawToken := false

	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			break
		}

		loc := tokenRE.FindStringSubmatchIndex(s)
		if loc == nil {
			return Period{}, &apperr.InvalidPeriodError{Input: input}
		}

		n, err := strconv.ParseInt(s[loc[2]:loc[3]], 10, 64)
		if err != nil {
			return Period{}, &apperr.InvalidPeriodError{Input: input, Err: err}
		}

		switch unit := s[loc[4]:loc[5]]; unit[0] {
		case 'y':
			years += n
		case 'm':
			months += n
		case 'w':
			weeks += n
		case 'd':
			days += n
		}

		sawToken = true
		s = s[loc[1]:]
	}

	if !sawToken {
		return Period{}, &apperr.InvalidPeriodError{Input: input}
	}

	return canonicalize(years, months, weeks, days), nil
}

// canonicalize folds years into months at *12 and weeks into months at /4,
// leaving the remainder (0-3 weeks, in days) alongside any bare days.
func canonicalize(years, months, weeks, days int64) Period {
	totalMonths := years*12 + months + weeks/4
	leftoverWeeks := weeks % 4
	totalDays := leftoverWeeks*7 + days
	return Period{Months: int(totalMonths), Days: int(totalDays)}
}

// String renders a canonical form, e.g. "1mo 3d". A zero period renders as
// "0d".
func (p Period) String() string {
	var parts []string
	if p.Months != 0 {
		parts = append(parts, fmt.Sprintf("%dmo", p.Months))
	}
	if p.Days != 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dd", p.Days))
	}
	return strings.Join(parts, " ")
}

// IsZero reports whether the period represents no offset at all.
func (p Period) IsZero() bool {
	return p.Months == 0 && p.Days == 0
}
