// Package workbook opens league schedule workbooks and selects the sheets
// the export pipeline cares about.
package workbook

import (
	"fmt"
	"log"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jspears/cgfs-scripts/internal/config"
	"github.com/jspears/cgfs-scripts/internal/models"
)

const scheduleSheetName = "SCHEDULE"

var (
	scheduleNameRe = regexp.MustCompile(`(?i)schedule`)
	ageRe          = regexp.MustCompile(`(?i)(\d{1,2})U`)
)

// ScheduleSheet is one selected schedule sheet with the age division code it
// was labelled with.
type ScheduleSheet struct {
	Name string
	Age  string
	Rows []models.RawRow
}

// Workbook is the loaded content of one file: its schedule sheets in
// selection order plus the raw field-directory rows.
type Workbook struct {
	Path      string
	Schedules []ScheduleSheet
	FieldRows []models.RawRow
}

// Loader reads xlsx workbooks into RawRow form.
type Loader struct {
	fieldSheetName string
}

func NewLoader(cfg *config.Config) *Loader {
	return &Loader{fieldSheetName: cfg.FieldSheetName}
}

// Load opens the workbook and picks its schedule sheets. A sheet named
// exactly "SCHEDULE" wins, with the age division taken from the file name;
// otherwise every sheet whose name contains "schedule" is used, each with the
// age taken from its own sheet name. A workbook without the field sheet is an
// error; a workbook without any schedule sheet just yields no games.
func (l *Loader) Load(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	wb := &Workbook{Path: path}

	sheetNames := f.GetSheetList()
	for _, name := range selectScheduleSheets(path, sheetNames) {
		rows, err := sheetRows(f, name.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q of %s: %w", name.Name, path, err)
		}
		name.Rows = rows
		wb.Schedules = append(wb.Schedules, name)
	}
	if len(wb.Schedules) == 0 {
		log.Printf("WARN: no schedule sheet in %s (sheets: %s)", path, strings.Join(sheetNames, ", "))
	}

	fieldRows, err := sheetRows(f, l.fieldSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read field sheet %q of %s: %w", l.fieldSheetName, path, err)
	}
	wb.FieldRows = fieldRows

	return wb, nil
}

// selectScheduleSheets applies the sheet-selection rule. Rows are filled in
// by the caller.
func selectScheduleSheets(path string, sheetNames []string) []ScheduleSheet {
	for _, name := range sheetNames {
		if name == scheduleSheetName {
			return []ScheduleSheet{{Name: name, Age: ParseAge(filepath.Base(path))}}
		}
	}

	var selected []ScheduleSheet
	for _, name := range sheetNames {
		if scheduleNameRe.MatchString(name) {
			selected = append(selected, ScheduleSheet{Name: name, Age: ParseAge(name)})
		}
	}
	return selected
}

// ParseAge extracts the numeric age-division code from a file or sheet name:
// the digits of the first "NU"/"NNU" token ("2022 10U Spring" -> "10").
// No match yields "", which just produces prefix-less team IDs.
func ParseAge(s string) string {
	m := ageRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}

// sheetRows reads a sheet into header-keyed rows: first row is the header,
// every following row maps header -> trimmed cell. Cells beyond the header
// width are ignored; short rows simply miss keys and read as "".
func sheetRows(f *excelize.File, sheetName string) ([]models.RawRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	out := make([]models.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(models.RawRow, len(headers))
		for j, cell := range cells {
			if j < len(headers) && headers[j] != "" {
				row[headers[j]] = strings.TrimSpace(cell)
			}
		}
		out = append(out, row)
	}

	return out, nil
}
