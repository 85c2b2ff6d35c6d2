// Package storage persists imported meeting records and colored-day
// annotations in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"notulen/internal/core"
	"notulen/internal/records"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ records.Source          = (*SQLiteRepository)(nil)
	_ records.AnnotationStore = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ImportRecord stores one normalized meeting record. The ISO date is the
// unique key: a record with an already-imported date is dropped silently
// (the deduplicating ingestion policy) and inserted=false is returned.
func (r *SQLiteRepository) ImportRecord(ctx context.Context, rec core.RawRecord, d core.Date) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO meetings (iso_date, raw_date, year, month, day) VALUES (?, ?, ?, ?, ?)`,
		d.ISO(), rec.Date, d.Year, d.Month, d.Day)
	if err != nil {
		return false, fmt.Errorf("insert meeting: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		slog.DebugContext(ctx, "Duplicate meeting date dropped", "iso_date", d.ISO(), "line", rec.Line)
		return false, nil
	}
	return true, nil
}

// ListRecords implements records.Source. The raw date text is returned so
// the load path runs through the same normalizer as every other backend.
func (r *SQLiteRepository) ListRecords(ctx context.Context) ([]core.RawRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, raw_date FROM meetings ORDER BY iso_date`)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	var out []core.RawRecord
	for rows.Next() {
		var id int64
		var raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		out = append(out, core.RawRecord{Line: int(id), Date: raw})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meetings: %w", err)
	}
	return out, nil
}

// ListColoredDays implements records.AnnotationReader.
func (r *SQLiteRepository) ListColoredDays(ctx context.Context) ([]core.ColoredDay, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT year, month, day, color FROM colored_days ORDER BY iso_date`)
	if err != nil {
		return nil, fmt.Errorf("list colored days: %w", err)
	}
	defer rows.Close()

	var out []core.ColoredDay
	for rows.Next() {
		var year, month, day int
		var color string
		if err := rows.Scan(&year, &month, &day, &color); err != nil {
			return nil, fmt.Errorf("scan colored day: %w", err)
		}
		d, err := core.NewDate(year, month, day)
		if err != nil {
			return nil, fmt.Errorf("stored colored day %04d-%02d-%02d: %w", year, month, day, err)
		}
		out = append(out, core.ColoredDay{Date: d, Color: color})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate colored days: %w", err)
	}
	return out, nil
}

// PutColoredDay implements records.AnnotationWriter, last write wins.
func (r *SQLiteRepository) PutColoredDay(ctx context.Context, cd core.ColoredDay) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO colored_days (iso_date, year, month, day, color)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(iso_date) DO UPDATE SET color = excluded.color, updated_at = CURRENT_TIMESTAMP`,
		cd.Date.ISO(), cd.Date.Year, cd.Date.Month, cd.Date.Day, cd.Color)
	if err != nil {
		return fmt.Errorf("upsert colored day: %w", err)
	}
	return nil
}
