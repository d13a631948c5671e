// Package checksum fingerprints input workbooks and extracted games so the
// export service can flag duplicates on the diagnostic stream.
package checksum

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/jspears/cgfs-scripts/internal/models"
)

// Workbook hashes a whole input file, used to spot the same workbook being
// passed twice in one run.
func Workbook(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer file.Close()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash workbook %s: %w", path, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Event hashes an extracted game, used to spot the same game being emitted
// twice across sheets or files. Cells are joined on a unit separator since
// address text routinely contains commas.
func Event(record *models.EventRecord) string {
	digest := xxhash.New()
	for _, cell := range record.Values() {
		digest.WriteString(cell)
		digest.WriteString("\x1f")
	}

	return hex.EncodeToString(digest.Sum(nil))
}
