package repository

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dastanaron/bookmark-exporter/internal/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const placesQuery = `
	SELECT b.title, p.url
	FROM moz_bookmarks AS b
	JOIN moz_places AS p ON p.id = b.fk
	WHERE p.url <> '' AND b.title <> ''
`

// PlacesStore implements BookmarkStore over a Firefox places.sqlite file
type PlacesStore struct {
	db   *sql.DB
	path string
}

var _ BookmarkStore = (*PlacesStore)(nil)

// OpenPlaces opens a places database read-only
func OpenPlaces(path string) (*PlacesStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(models.ErrStoreOpen, "%s: %v", path, err)
	}

	db, err := sql.Open("sqlite3", readOnlyDSN(path))
	if err != nil {
		return nil, errors.Wrapf(models.ErrStoreOpen, "%s: %v", path, err)
	}
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; touch the header so that a non-database file fails here
	var n int
	if err := db.QueryRow(`SELECT count(*) FROM sqlite_master`).Scan(&n); err != nil {
		db.Close()
		return nil, errors.Wrapf(models.ErrStoreOpen, "%s: %v", path, err)
	}

	return &PlacesStore{db: db, path: path}, nil
}

// readOnlyDSN builds a SQLite URI; the path must be absolute so that it is
// not read as the URI authority.
func readOnlyDSN(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path), RawQuery: "mode=ro"}
	return u.String()
}

// Path returns the database file the store was opened from
func (s *PlacesStore) Path() string {
	return s.path
}

// Records joins moz_bookmarks to moz_places and yields every row with a
// non-empty title and URL, in the order the query engine returns them.
func (s *PlacesStore) Records(ctx context.Context) (*RecordIterator, error) {
	rows, err := s.db.QueryContext(ctx, placesQuery)
	if err != nil {
		return nil, errors.Wrapf(models.ErrQuery, "%s: %v", s.path, err)
	}
	return &RecordIterator{rows: rows, path: s.path}, nil
}

// Close closes the database connection
func (s *PlacesStore) Close() error {
	return s.db.Close()
}

// RecordIterator walks the rows of one query execution
type RecordIterator struct {
	rows   *sql.Rows
	path   string
	cur    models.Record
	err    error
	closed bool
}

// Next advances to the next record. It returns false when the rows are
// exhausted or an error occurred; the rows are released in both cases.
func (it *RecordIterator) Next() bool {
	if it.closed {
		return false
	}
	if !it.rows.Next() {
		if err := it.rows.Err(); err != nil {
			it.err = errors.Wrapf(models.ErrQuery, "%s: %v", it.path, err)
		}
		it.Close()
		return false
	}

	var r models.Record
	if err := it.rows.Scan(&r.Title, &r.URL); err != nil {
		it.err = errors.Wrapf(models.ErrQuery, "%s: %v", it.path, err)
		it.Close()
		return false
	}
	it.cur = r
	return true
}

// Record returns the current record
func (it *RecordIterator) Record() models.Record {
	return it.cur
}

// Err returns the error that stopped iteration, if any
func (it *RecordIterator) Err() error {
	return it.err
}

// Close releases the underlying rows. It is safe to call more than once.
func (it *RecordIterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	return it.rows.Close()
}

// ReadPlaces opens path, reads every record and closes the store
func ReadPlaces(ctx context.Context, path string) ([]models.Record, error) {
	store, err := OpenPlaces(path)
	if err != nil {
		return nil, err
	}
	return readStore(ctx, store)
}

func readStore(ctx context.Context, store BookmarkStore) ([]models.Record, error) {
	defer store.Close()

	it, err := store.Records(ctx)
	if err != nil {
		return nil, err
	}
	return ReadAll(it)
}
