package repository

import (
	"context"

	"github.com/dastanaron/bookmark-exporter/internal/models"
)

// BookmarkStore defines read access to a browser bookmark store
type BookmarkStore interface {
	// Records runs a fresh query and returns a single-pass iterator over its rows.
	Records(ctx context.Context) (*RecordIterator, error)
	Close() error
}

// ReadAll drains the iterator and closes it
func ReadAll(it *RecordIterator) ([]models.Record, error) {
	defer it.Close()

	var records []models.Record
	for it.Next() {
		records = append(records, it.Record())
	}
	return records, it.Err()
}
