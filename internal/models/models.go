package models

import "time"

// RawRow is one spreadsheet row keyed by column header. Cells are the
// formatted string values excelize reports, trimmed; missing cells read as "".
type RawRow map[string]string

// Get returns the first non-empty value among the given column names.
func (r RawRow) Get(columns ...string) string {
	for _, col := range columns {
		if v := r[col]; v != "" {
			return v
		}
	}
	return ""
}

// ScheduleRow is a RawRow after date carry-forward and time resolution.
type ScheduleRow struct {
	Raw      RawRow
	Index    int        // position in the source sheet, for diagnostics
	Date     string     // own Date cell or the nearest preceding non-empty one
	DateTime *time.Time // nil when the row's time could not be resolved
	Age      string
}

// IsGame reports whether the row describes a playable game: both team
// columns filled and a resolved start time.
func (s *ScheduleRow) IsGame() bool {
	return s.DateTime != nil &&
		s.Raw.Get("Home Team") != "" &&
		s.Raw.Get("Away Team") != ""
}

// FieldRecord is one venue entry from the Field Information sheet.
type FieldRecord struct {
	Name    string // display name, "<name> (<other info>)" when Other Info is set
	Address string // single line, newlines already folded to commas
	League  string
}

// EventRecord is one row of the calendar-import CSV. Every field is a string;
// the zero value renders as an empty cell.
type EventRecord struct {
	StartDate        string
	StartTime        string
	EndDate          string
	EndTime          string
	Title            string
	Description      string
	Location         string
	LocationURL      string
	LocationDetails  string
	AllDayEvent      string
	EventType        string
	Tags             string
	Team1ID          string
	Team1DivisionID  string
	Team1IsHome      string
	Team2ID          string
	Team2DivisionID  string
	Team2Name        string
	CustomOpponent   string
	EventID          string
	GameID           string
	AffectsStandings string
	PointsWin        string
	PointsLoss       string
	PointsTie        string
	PointsOTWin      string
	PointsOTLoss     string
	DivisionOverride string
}

// Values returns the record's cells in calendar-import column order.
func (e *EventRecord) Values() []string {
	return []string{
		e.StartDate, e.StartTime, e.EndDate, e.EndTime,
		e.Title, e.Description,
		e.Location, e.LocationURL, e.LocationDetails,
		e.AllDayEvent, e.EventType, e.Tags,
		e.Team1ID, e.Team1DivisionID, e.Team1IsHome,
		e.Team2ID, e.Team2DivisionID, e.Team2Name, e.CustomOpponent,
		e.EventID, e.GameID,
		e.AffectsStandings,
		e.PointsWin, e.PointsLoss, e.PointsTie, e.PointsOTWin, e.PointsOTLoss,
		e.DivisionOverride,
	}
}
