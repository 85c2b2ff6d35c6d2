package backend

import (
	"context"
	"fmt"
	"log/slog"

	"notulen/internal/records"
	"notulen/internal/records/csvfile"
	gsheet "notulen/internal/records/google"
	"notulen/internal/records/memory"
	"notulen/internal/storage"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// composite pairs a read-only record source with an in-memory annotation
// store, so every backend satisfies the full Backend interface.
type composite struct {
	records.Source
	records.AnnotationStore
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case CSVBackend:
		src := csvfile.New(config.CSVPath)
		f.logger.Info("Initialized CSV backend", "path", config.CSVPath)
		return &BackendResult{
			Backend: composite{Source: src, AnnotationStore: memory.NewAnnotations()},
		}, nil

	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return &BackendResult{Backend: repo, Cleanup: repo.Close}, nil

	case SheetsBackend:
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend")
		return &BackendResult{
			Backend: composite{Source: cli, AnnotationStore: memory.NewAnnotations()},
		}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &BackendResult{Backend: memory.New(nil)}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
