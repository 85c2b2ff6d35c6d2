package records

import (
	"context"

	"notulen/internal/core"
)

// Ports for outbound adapters.
type (
	// Source lists the raw meeting records exactly once per page view;
	// normalization and aggregation happen downstream.
	Source interface {
		ListRecords(ctx context.Context) ([]core.RawRecord, error)
	}

	// AnnotationReader lists the user-declared colored days.
	AnnotationReader interface {
		ListColoredDays(ctx context.Context) ([]core.ColoredDay, error)
	}

	// AnnotationWriter stores one colored day, replacing any earlier
	// declaration for the same date.
	AnnotationWriter interface {
		PutColoredDay(ctx context.Context, cd core.ColoredDay) error
	}

	// AnnotationStore combines both annotation ports.
	AnnotationStore interface {
		AnnotationReader
		AnnotationWriter
	}
)
