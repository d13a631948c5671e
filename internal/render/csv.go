// Package render serializes event records into the calendar-import CSV
// schema.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jspears/cgfs-scripts/internal/models"
)

// Columns is the import schema, in contract order. Unpopulated columns still
// render as empty fields.
var Columns = []string{
	"Start_Date", "Start_Time", "End_Date", "End_Time",
	"Title", "Description",
	"Location", "Location_URL", "Location_Details",
	"All_Day_Event", "Event_Type", "Tags",
	"Team1_ID", "Team1_Division_ID", "Team1_Is_Home",
	"Team2_ID", "Team2_Division_ID", "Team2_Name", "Custom_Opponent",
	"Event_ID", "Game_ID",
	"Affects_Standings",
	"Points_Win", "Points_Loss", "Points_Tie", "Points_OT_Win", "Points_OT_Loss",
	"Division_Override",
}

// bareCellRe matches values safe to emit without quoting. The import side
// accepts either form, so only cells with spaces, commas or other
// punctuation get quoted.
var bareCellRe = regexp.MustCompile(`^[\w\-+:/]+$`)

// Header returns the literal column names joined by commas.
func Header() string {
	return strings.Join(Columns, ",")
}

// Render writes the header row followed by one line per record.
func Render(w io.Writer, records []models.EventRecord) error {
	if _, err := io.WriteString(w, Header()+"\n"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range records {
		if _, err := io.WriteString(w, Row(&records[i])+"\n"); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}

// Row renders one record as a CSV line, without the trailing newline.
func Row(record *models.EventRecord) string {
	values := record.Values()
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = Quote(v)
	}
	return strings.Join(cells, ",")
}

// Quote renders a single cell: empty for empty, bare when the value is plain
// enough, otherwise a JSON-escaped quoted string. HTML escaping is off:
// address text like "Main St & 5th Ave" must keep its ampersand rather than
// turn into a \u0026 escape.
func Quote(v string) string {
	if v == "" {
		return ""
	}
	if bareCellRe.MatchString(v) {
		return v
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// Encoding a string cannot fail; keep the row rather than dropping
		// data if it somehow does.
		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	}
	// Encode appends a newline after the value.
	return strings.TrimRight(buf.String(), "\n")
}
