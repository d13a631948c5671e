package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries the knobs of the export pipeline. Everything has a working
// default; environment variables override.
type Config struct {
	// InternalTeamPattern marks a team as one of ours when its name contains
	// this substring (case-insensitive).
	InternalTeamPattern string
	// GameDurationMinutes is added to every start time to derive the end
	// time; the sheets never carry an explicit end.
	GameDurationMinutes int
	// EarliestGameHour / LatestGameHour bound the plausible start-hour
	// window. A resolved start outside it is rejected as a parse error,
	// which catches transposed digits in hand-typed times.
	EarliestGameHour int
	LatestGameHour   int
	// FieldSheetName is the workbook sheet holding the field directory.
	FieldSheetName string
}

func New() (*Config, error) {
	cfg := &Config{
		InternalTeamPattern: "cgfs",
		GameDurationMinutes: 120,
		EarliestGameHour:    8,
		LatestGameHour:      20,
		FieldSheetName:      "Field Information",
	}

	if v := os.Getenv("INTERNAL_TEAM_PATTERN"); v != "" {
		cfg.InternalTeamPattern = v
	}
	if v := os.Getenv("FIELD_SHEET_NAME"); v != "" {
		cfg.FieldSheetName = v
	}

	var err error
	cfg.GameDurationMinutes, err = getEnvAsInt("GAME_DURATION_MINUTES", cfg.GameDurationMinutes)
	if err != nil {
		return nil, err
	}

	cfg.EarliestGameHour, err = getEnvAsInt("EARLIEST_GAME_HOUR", cfg.EarliestGameHour)
	if err != nil {
		return nil, err
	}

	cfg.LatestGameHour, err = getEnvAsInt("LATEST_GAME_HOUR", cfg.LatestGameHour)
	if err != nil {
		return nil, err
	}

	if cfg.EarliestGameHour > cfg.LatestGameHour {
		return nil, fmt.Errorf("EARLIEST_GAME_HOUR (%d) must not exceed LATEST_GAME_HOUR (%d)", cfg.EarliestGameHour, cfg.LatestGameHour)
	}

	return cfg, nil
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: expected an integer, got '%s'", key, valueStr)
	}

	return value, nil
}
