package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspears/cgfs-scripts/internal/fields"
	"github.com/jspears/cgfs-scripts/internal/models"
)

func testDirectory() fields.Directory {
	return fields.Directory{
		"lincoln": {Name: "Lincoln Park (turf)", Address: "1 Park Ave, Springfield", League: "North"},
		"oak":     {Name: "Oak Field", Address: "2 Oak St, Springfield", League: "North"},
	}
}

func gameRow(date, timeText, home, away, location string) models.RawRow {
	row := models.RawRow{
		"Time":      timeText,
		"Home Team": home,
		"Away Team": away,
		"Location":  location,
	}
	if date != "" {
		row["Date"] = date
	}
	return row
}

func TestExtractHomeInternal(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		gameRow("3/10/2023", "6:30", "CGFS Blue", "Rivals", "Lincoln Park"),
	}, "10", testDirectory())
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "3/10/23", record.StartDate)
	assert.Equal(t, "18:30", record.StartTime)
	assert.Equal(t, "3/10/23", record.EndDate)
	assert.Equal(t, "20:30", record.EndTime)
	assert.Equal(t, "Lincoln Park (turf)", record.Location)
	assert.Equal(t, "1 Park Ave, Springfield", record.LocationDetails)
	assert.Equal(t, "Game", record.EventType)
	assert.Equal(t, "10CGFSBLUE", record.Team1ID)
	assert.Equal(t, "1", record.Team1IsHome)
	assert.Equal(t, "10RIVALS", record.Team2ID)
	assert.Equal(t, "Rivals", record.Team2Name)
	assert.Equal(t, "TRUE", record.CustomOpponent)
}

func TestExtractHomeExternalFlipsRecord(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		gameRow("3/10/2023", "6:30", "Rivals", "CGFS Blue", "Oak"),
	}, "10", testDirectory())
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "10CGFSBLUE", record.Team1ID)
	assert.Equal(t, "0", record.Team1IsHome)
	assert.Equal(t, "10RIVALS", record.Team2ID)
	assert.Equal(t, "Rivals", record.Team2Name)
	assert.Equal(t, "TRUE", record.CustomOpponent)
}

func TestExtractBothInternal(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		gameRow("3/10/2023", "6:30", "CGFS Blue", "CGFS Gold", "Oak"),
	}, "12", testDirectory())
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "12CGFSBLUE", record.Team1ID)
	assert.Equal(t, "12CGFSGOLD", record.Team2ID)
	assert.Equal(t, "1", record.Team1IsHome)
	assert.Empty(t, record.Team2Name)
	assert.Empty(t, record.CustomOpponent)
}

func TestExtractBothExternalDiscarded(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		gameRow("3/10/2023", "6:30", "Rivals", "Strangers", "Oak"),
	}, "10", testDirectory())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestExtractDateCarryForward(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		gameRow("3/1/2023", "6:00", "CGFS Blue", "Rivals", "Oak"),
		gameRow("", "7:30", "CGFS Gold", "Rivals", "Oak"),
	}, "10", testDirectory())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "3/1/23", records[0].StartDate)
	assert.Equal(t, "18:00", records[0].StartTime)
	assert.Equal(t, "3/1/23", records[1].StartDate)
	assert.Equal(t, "19:30", records[1].StartTime)
}

func TestExtractSkipsNonGameRows(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		{"Date": "WEEK 1"},               // section header
		{},                               // blank separator
		{"Time": "Time", "Date": "Date"}, // repeated header row
		gameRow("3/10/2023", "6:30", "CGFS Blue", "Rivals", "Oak"),
		{"Time": "6:30"}, // time but no teams
	}, "10", testDirectory())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExtractDropsUnparseableTimeRow(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		gameRow("3/10/2023", "TBD", "CGFS Blue", "Rivals", "Oak"),
		gameRow("", "6:30", "CGFS Gold", "Rivals", "Oak"),
	}, "10", testDirectory())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "10CGFSGOLD", records[0].Team1ID)
}

func TestExtractLocationNotFoundIsFatal(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		gameRow("3/10/2023", "6:30", "CGFS Blue", "Rivals", "Atlantis Dome"),
	}, "10", testDirectory())
	require.Error(t, err)
	assert.Nil(t, records)

	var locErr *models.LocationNotFoundError
	require.ErrorAs(t, err, &locErr)
	assert.Equal(t, "Atlantis Dome", locErr.Location)
	assert.Equal(t, "atlantis dome", locErr.Key)
}

func TestExtractLocationColumnFallbacks(t *testing.T) {
	extractor := NewExtractor(testConfig())

	t.Run("Field Name column", func(t *testing.T) {
		records, err := extractor.Extract("SCHEDULE", []models.RawRow{
			{"Date": "3/10/2023", "Time": "6:30", "Home Team": "CGFS Blue", "Away Team": "Rivals", "Field Name": "Lincoln Park"},
		}, "10", testDirectory())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Lincoln Park (turf)", records[0].Location)
	})

	t.Run("Field column", func(t *testing.T) {
		records, err := extractor.Extract("SCHEDULE", []models.RawRow{
			{"Date": "3/10/2023", "Time": "6:30", "Home Team": "CGFS Blue", "Away Team": "Rivals", "Field": "oak field"},
		}, "10", testDirectory())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Oak Field", records[0].Location)
	})
}

func TestExtractMissingAgePrefix(t *testing.T) {
	extractor := NewExtractor(testConfig())

	records, err := extractor.Extract("SCHEDULE", []models.RawRow{
		gameRow("3/10/2023", "6:30", "CGFS Blue", "Rivals", "Oak"),
	}, "", testDirectory())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CGFSBLUE", records[0].Team1ID)
}
