package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Record backend selection: csv, memory, sqlite or sheets
	DataBackend string

	// CSV backend
	CSVPath string

	// SQLite backend
	SQLiteDBPath string

	// Google Sheets backend (credentials are read by the sheets client)
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// Optional inclusive year-range filter applied to the day-of-year
	// view. Zero values mean unfiltered.
	YearMin int
	YearMax int

	// Layout knobs for the rendered charts
	CellWidth   int
	CellHeight  int
	CellGap     int
	MarginX     int
	MarginY     int
	OpacityStep float64
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		DataBackend: getEnv("DATA_BACKEND", "csv"),

		CSVPath:      getEnv("CSV_PATH", "./data/meetings.csv"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/notulen.db"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", ""),

		YearMin: getEnvInt("YEAR_MIN", 0),
		YearMax: getEnvInt("YEAR_MAX", 0),

		CellWidth:   getEnvInt("CELL_WIDTH", 3),
		CellHeight:  getEnvInt("CELL_HEIGHT", 14),
		CellGap:     getEnvInt("CELL_GAP", 1),
		MarginX:     getEnvInt("MARGIN_X", 20),
		MarginY:     getEnvInt("MARGIN_Y", 20),
		OpacityStep: getEnvFloat("OPACITY_STEP", 0.25),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "csv":
		if strings.TrimSpace(c.CSVPath) == "" {
			errors = append(errors, "csv backend requires CSV_PATH")
		}
	case "sqlite":
		if strings.TrimSpace(c.SQLiteDBPath) == "" {
			errors = append(errors, "sqlite backend requires SQLITE_DB_PATH")
		}
	case "sheets":
		if strings.TrimSpace(c.GoogleSpreadsheetID) == "" {
			errors = append(errors, "sheets backend requires GOOGLE_SPREADSHEET_ID")
		}
	case "memory":
		// nothing to check
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of csv, memory, sqlite, sheets", c.DataBackend))
	}

	if c.YearMin != 0 && c.YearMax != 0 && c.YearMin > c.YearMax {
		errors = append(errors, fmt.Sprintf("invalid year range %d..%d: min exceeds max", c.YearMin, c.YearMax))
	}

	if c.CellWidth < 1 || c.CellHeight < 1 {
		errors = append(errors, "cell dimensions must be positive")
	}
	if c.CellGap < 0 || c.MarginX < 0 || c.MarginY < 0 {
		errors = append(errors, "spacing and margins must be non-negative")
	}
	if c.OpacityStep <= 0 || c.OpacityStep > 1 {
		errors = append(errors, fmt.Sprintf("invalid opacity step %v: must be in (0, 1]", c.OpacityStep))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errors, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
