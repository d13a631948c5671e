package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jspears/cgfs-scripts/internal/config"
	"github.com/jspears/cgfs-scripts/internal/models"
)

// timeRe accepts the clock portion of a Time cell: hour, minutes, optional
// AM/PM in any casing with optional space. Anything else (bare "9",
// "TBD", ...) is not a time.
var timeRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{1,2})\s*(am|pm)?`)

// parseAttempt is one named strategy in the ordered fallback chain.
type parseAttempt struct {
	name      string
	layout    string
	useSuffix bool
}

// The sheets mix 12-hour times ("6:30", "7:00 PM") with occasional 24-hour
// ones ("18:30") depending on the season, so parsing is an ordered list of
// attempts rather than a single layout.
var parseAttempts = []parseAttempt{
	{name: "12-hour", layout: "1/2/2006 3:4 PM", useSuffix: true},
	{name: "24-hour", layout: "1/2/2006 15:4", useSuffix: false},
}

// Resolver turns (date cell, time cell) pairs into absolute timestamps.
type Resolver struct {
	earliestHour int
	latestHour   int
}

func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		earliestHour: cfg.EarliestGameHour,
		latestHour:   cfg.LatestGameHour,
	}
}

// ResolveDateTime parses a date cell and a time cell into one timestamp.
//
// A time without an AM/PM suffix defaults to PM: these are evening leagues,
// and that is how the sheets are actually typed. Only the first
// whitespace-separated token of the date cell is used, since date cells
// sometimes carry a spurious time fragment.
//
// Each attempt must also land inside the configured start-hour window; a
// 12-hour reading pushed out of the window by the PM default falls through
// to the 24-hour reading, and a result no attempt can place in the window is
// a *models.DateParseError.
func (r *Resolver) ResolveDateTime(dateText, timeText string) (time.Time, error) {
	m := timeRe.FindStringSubmatch(timeText)
	if m == nil {
		return time.Time{}, &models.TimeParseError{Text: timeText}
	}
	clock := m[1]
	explicitSuffix := m[2] != ""
	suffix := strings.ToUpper(m[2])
	if suffix == "" {
		suffix = "PM"
	}

	day := firstToken(dateText)
	if day == "" {
		return time.Time{}, &models.DateParseError{
			Text:   dateText + " " + timeText,
			Reason: "no date for row (empty Date cell and nothing to carry forward)",
		}
	}

	var attempts []string
	for _, attempt := range parseAttempts {
		candidate := day + " " + clock
		if attempt.useSuffix {
			candidate += " " + suffix
		}

		t, err := time.Parse(attempt.layout, candidate)
		if err != nil {
			attempts = append(attempts, attempt.name+": no match")
			continue
		}
		if t.Hour() < r.earliestHour || t.Hour() > r.latestHour {
			attempts = append(attempts, fmt.Sprintf("%s: hour %d outside %d-%d window", attempt.name, t.Hour(), r.earliestHour, r.latestHour))
			if attempt.useSuffix && explicitSuffix {
				// The cell said AM or PM outright; reinterpreting it as
				// 24-hour would override the author's intent.
				break
			}
			continue
		}
		return t, nil
	}

	return time.Time{}, &models.DateParseError{
		Text:     day + " " + clock + " " + suffix,
		Attempts: attempts,
	}
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
