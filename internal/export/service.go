// Package export orchestrates the per-file pipeline: load workbook, build
// the field directory, extract games, render the aggregate CSV.
package export

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jspears/cgfs-scripts/internal/config"
	"github.com/jspears/cgfs-scripts/internal/fields"
	"github.com/jspears/cgfs-scripts/internal/models"
	"github.com/jspears/cgfs-scripts/internal/render"
	"github.com/jspears/cgfs-scripts/internal/schedule"
	"github.com/jspears/cgfs-scripts/internal/workbook"
	"github.com/jspears/cgfs-scripts/pkg/checksum"
)

// Service runs the whole export. Files are processed strictly in argument
// order, one at a time; each gets its own field directory, and output row
// order follows file, sheet, row order.
type Service struct {
	loader    *workbook.Loader
	extractor *schedule.Extractor
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		loader:    workbook.NewLoader(cfg),
		extractor: schedule.NewExtractor(cfg),
	}
}

// Execute converts the given workbooks and writes the aggregate CSV to out.
// Nothing is written until every file has been processed, so a fatal error
// (unreadable workbook, unresolvable location) aborts the run without
// emitting a partial document.
func (s *Service) Execute(paths []string, out io.Writer) error {
	log.Printf("processing %s", strings.Join(paths, " "))

	warnDuplicateInputs(paths)

	var records []models.EventRecord
	for _, path := range paths {
		fileRecords, err := s.processFile(path)
		if err != nil {
			return err
		}
		records = append(records, fileRecords...)
	}

	warnDuplicateGames(records)

	if err := render.Render(out, records); err != nil {
		return err
	}

	log.Printf("exported %d games from %d file(s)", len(records), len(paths))
	return nil
}

func (s *Service) processFile(path string) ([]models.EventRecord, error) {
	wb, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}

	dir := fields.BuildDirectory(wb.FieldRows)
	log.Printf("%s: %d schedule sheet(s), %d field(s)", path, len(wb.Schedules), len(dir))

	var records []models.EventRecord
	for _, sheet := range wb.Schedules {
		sheetRecords, err := s.extractor.Extract(sheet.Name, sheet.Rows, sheet.Age, dir)
		if err != nil {
			return nil, fmt.Errorf("%s sheet %q: %w", path, sheet.Name, err)
		}
		records = append(records, sheetRecords...)
	}

	return records, nil
}

// warnDuplicateInputs flags the same workbook content passed twice, which
// would double every game in the calendar.
func warnDuplicateInputs(paths []string) {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		sum, err := checksum.Workbook(path)
		if err != nil {
			// The loader will surface unreadable files with a better error.
			continue
		}
		if prev, ok := seen[sum]; ok {
			log.Printf("WARN: %s has the same content as %s; games will be emitted twice", path, prev)
			continue
		}
		seen[sum] = path
	}
}

// warnDuplicateGames flags identical event rows, typically the same game
// listed on two division sheets.
func warnDuplicateGames(records []models.EventRecord) {
	seen := make(map[string]bool, len(records))
	for i := range records {
		sum := checksum.Event(&records[i])
		if seen[sum] {
			log.Printf("WARN: duplicate game %s %s %s vs %s", records[i].StartDate, records[i].StartTime, records[i].Team1ID, records[i].Team2ID)
			continue
		}
		seen[sum] = true
	}
}
