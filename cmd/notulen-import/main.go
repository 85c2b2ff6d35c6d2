// Command notulen-import loads a CSV record file into the SQLite backend.
// Rows sharing an ISO date with an already-stored meeting are skipped, so
// the import is safe to re-run.
package main

import (
	"context"
	"flag"
	"os"

	"notulen/internal/cli"
	"notulen/internal/core"
	"notulen/internal/log"
	"notulen/internal/records/csvfile"
	"notulen/internal/storage"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentImport)
	cfg := cli.LoadAndValidateConfig(logger)

	csvPath := flag.String("csv", cfg.CSVPath, "path to the CSV record file")
	dbPath := flag.String("db", cfg.SQLiteDBPath, "path to the SQLite database")
	flag.Parse()

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	repo, err := storage.NewSQLiteRepository(*dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository",
			log.FieldError, err, log.FieldPath, *dbPath)
		os.Exit(1)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Close failed", log.FieldError, err)
		}
	}()

	src := csvfile.New(*csvPath)
	recs, err := src.ListRecords(ctx)
	if err != nil {
		logger.Error("Record load failed",
			log.FieldError, err,
			log.FieldReason, string(core.ReasonLoadFailure),
			log.FieldPath, *csvPath)
		os.Exit(1)
	}

	var imported, duplicates int
	skipped := make(map[core.RejectReason]int)

	for _, rec := range recs {
		d, err := core.Normalize(rec.Date)
		if err != nil {
			reason, _ := core.ReasonOf(err)
			skipped[reason]++
			logger.Warn("Row skipped",
				log.FieldLine, rec.Line,
				log.FieldRawDate, rec.Date,
				log.FieldReason, string(reason))
			continue
		}
		inserted, err := repo.ImportRecord(ctx, rec, d)
		if err != nil {
			logger.Error("Import failed",
				log.FieldError, err,
				log.FieldLine, rec.Line,
				log.FieldISODate, d.ISO())
			os.Exit(1)
		}
		if inserted {
			imported++
		} else {
			duplicates++
		}
	}

	logger.Info("Import complete",
		log.FieldPath, *csvPath,
		log.FieldRows, len(recs),
		"imported", imported,
		"duplicates", duplicates,
		log.FieldSkipped, skipped)
}
