// Package fields builds the venue lookup table from a workbook's
// "Field Information" sheet.
package fields

import (
	"strings"

	"github.com/jspears/cgfs-scripts/internal/models"
	"github.com/jspears/cgfs-scripts/internal/normalize"
)

// Directory maps normalized field names to their records. Read-only once
// built; one is built per workbook.
type Directory map[string]models.FieldRecord

// BuildDirectory scans the field sheet rows in order. League and Field
// Address follow the grouped-cell convention: a blank cell inherits the
// nearest preceding non-blank value in the same column. Rows whose name
// normalizes to nothing are skipped; on duplicate keys the last row wins.
func BuildDirectory(rows []models.RawRow) Directory {
	dir := make(Directory, len(rows))

	var lastLeague, lastAddress string
	for _, row := range rows {
		if league := row.Get("League"); league != "" {
			lastLeague = league
		}
		if address := row.Get("Field Address"); address != "" {
			lastAddress = address
		}

		name := row.Get("Field Name", "Field")
		key := normalize.Key(name)
		if key == "" {
			continue
		}

		display := strings.TrimSpace(name)
		if other := strings.TrimSpace(row.Get("Other Info")); other != "" {
			display = display + " (" + other + ")"
		}

		dir[key] = models.FieldRecord{
			Name:    display,
			Address: flattenAddress(lastAddress),
			League:  lastLeague,
		}
	}

	return dir
}

// Lookup resolves free-form location text against the directory. The empty
// key never matches.
func (d Directory) Lookup(text string) (models.FieldRecord, bool) {
	key := normalize.Key(text)
	if key == "" {
		return models.FieldRecord{}, false
	}
	rec, ok := d[key]
	return rec, ok
}

// flattenAddress folds the multi-line addresses typed into merged cells onto
// a single comma-separated line.
func flattenAddress(address string) string {
	address = strings.ReplaceAll(address, "\r\n", ",")
	address = strings.ReplaceAll(address, "\n", ",")
	return strings.TrimSpace(address)
}
