// Package schedule reconstructs game events from the loosely structured rows
// of a schedule sheet: date carry-forward, time resolution, home/away
// classification and venue lookup.
package schedule

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jspears/cgfs-scripts/internal/config"
	"github.com/jspears/cgfs-scripts/internal/fields"
	"github.com/jspears/cgfs-scripts/internal/models"
	"github.com/jspears/cgfs-scripts/internal/normalize"
)

const eventType = "Game"

// Extractor turns one schedule sheet's rows into EventRecords.
type Extractor struct {
	resolver        *Resolver
	internalPattern string
	duration        time.Duration
}

func NewExtractor(cfg *config.Config) *Extractor {
	return &Extractor{
		resolver:        NewResolver(cfg),
		internalPattern: strings.ToLower(cfg.InternalTeamPattern),
		duration:        time.Duration(cfg.GameDurationMinutes) * time.Minute,
	}
}

// Extract processes rows in sheet order and returns one EventRecord per game
// involving at least one internal team. Rows whose time cannot be resolved
// are dropped with a warning; an unresolvable location aborts the sheet with
// a *models.LocationNotFoundError, since that is a data-entry error the
// operator has to fix in the workbook.
func (x *Extractor) Extract(sheetName string, rows []models.RawRow, age string, dir fields.Directory) ([]models.EventRecord, error) {
	resolved := x.resolveRows(sheetName, rows, age)

	var records []models.EventRecord
	for _, row := range resolved {
		if !row.IsGame() {
			continue
		}

		home := row.Raw.Get("Home Team")
		away := row.Raw.Get("Away Team")
		internalHome := x.isInternal(home)
		internalAway := x.isInternal(away)
		if !internalHome && !internalAway {
			// Interleague filler between two outside clubs; not our calendar.
			continue
		}

		// The calendar feed wants our team in the Team1 slot. When the
		// sheet's Home Team is the outside club, our side is the away side,
		// so the record flips relative to the literal columns.
		isAway := !internalHome

		location := row.Raw.Get("Location", "Field Name", "Field")
		venue, ok := dir.Lookup(location)
		if !ok {
			return nil, &models.LocationNotFoundError{Location: location, Key: normalize.Key(location)}
		}

		start := *row.DateTime
		end := start.Add(x.duration)

		record := models.EventRecord{
			StartDate:       formatDate(start),
			StartTime:       formatTime(start),
			EndDate:         formatDate(end),
			EndTime:         formatTime(end),
			Location:        venue.Name,
			LocationDetails: venue.Address,
			EventType:       eventType,
		}

		switch {
		case internalHome && internalAway:
			record.Team1ID = teamID(row.Age, home)
			record.Team2ID = teamID(row.Age, away)
			record.Team1IsHome = "1"
		case isAway:
			record.Team1ID = teamID(row.Age, away)
			record.Team1IsHome = "0"
			record.Team2ID = teamID(row.Age, home)
			record.Team2Name = home
			record.CustomOpponent = "TRUE"
		default:
			record.Team1ID = teamID(row.Age, home)
			record.Team1IsHome = "1"
			record.Team2ID = teamID(row.Age, away)
			record.Team2Name = away
			record.CustomOpponent = "TRUE"
		}

		records = append(records, record)
	}

	return records, nil
}

// resolveRows walks the sheet top to bottom carrying the most recent
// non-empty Date cell forward, the way the sheets use merged date cells to
// head a block of games. Rows with a Time cell get a resolved timestamp;
// resolution failures are logged and leave DateTime nil.
func (x *Extractor) resolveRows(sheetName string, rows []models.RawRow, age string) []models.ScheduleRow {
	resolved := make([]models.ScheduleRow, 0, len(rows))

	var carried string
	for i, raw := range rows {
		if own := raw.Get("Date"); own != "" {
			carried = own
		}

		row := models.ScheduleRow{
			Raw:   raw,
			Index: i + 2, // 1-based, after the header row
			Date:  carried,
			Age:   age,
		}

		if timeText := raw.Get("Time"); timeText != "" {
			t, err := x.resolver.ResolveDateTime(carried, timeText)
			if err != nil {
				log.Printf("WARN: dropping row: %v", &models.RowError{
					Sheet: sheetName,
					Row:   row.Index,
					Date:  carried,
					Time:  timeText,
					Err:   err,
				})
			} else {
				row.DateTime = &t
			}
		}

		resolved = append(resolved, row)
	}

	return resolved
}

func (x *Extractor) isInternal(team string) bool {
	return strings.Contains(strings.ToLower(team), x.internalPattern)
}

// teamID derives the feed's team identifier: age division code followed by
// the uppercased name with all whitespace removed.
func teamID(age, name string) string {
	return age + strings.ToUpper(strings.Join(strings.Fields(name), ""))
}

func formatDate(t time.Time) string {
	return t.Format("1/2/06")
}

// formatTime renders 24-hour clock with an unpadded hour ("8:00", "18:30"),
// which the import format expects and time.Format cannot produce.
func formatTime(t time.Time) string {
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}
