package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/undergradassistant/backend/internal/logging"
	"github.com/undergradassistant/backend/internal/monitoring"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Store is the SQLite-backed repository for users and professors.
// List-valued columns persist as JSON text. Statements run without
// explicit transactions, so every insert commits independently and a
// batch insert can partially succeed.
type Store struct {
	db      *sql.DB
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// Open opens (creating if needed) the database at path and applies the
// schema. The parent directory is created when missing. The metrics
// argument may be nil.
func Open(path string, log *logging.Logger, metrics *monitoring.Metrics) (*Store, error) {
	if log == nil {
		log = logging.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, log: log.Named("store"), metrics: metrics}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Stats describes the current database contents.
type Stats struct {
	TotalUsers      int      `json:"total_users"`
	TotalProfessors int      `json:"total_professors"`
	UniqueMajors    int      `json:"unique_majors"`
	UniqueLocations int      `json:"unique_locations"`
	Majors          []string `json:"majors"`
	Locations       []string `json:"locations"`
}

// Stats returns row counts plus the distinct majors and campus locations.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{Majors: []string{}, Locations: []string{}}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM professors`).Scan(&stats.TotalProfessors); err != nil {
		return nil, fmt.Errorf("count professors: %w", err)
	}

	rows, err := s.db.Query(`SELECT DISTINCT major FROM users WHERE major IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("distinct majors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var major string
		if err := rows.Scan(&major); err != nil {
			return nil, err
		}
		stats.Majors = append(stats.Majors, major)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	locRows, err := s.db.Query(`SELECT DISTINCT location FROM professors WHERE location IS NOT NULL AND location != ''`)
	if err != nil {
		return nil, fmt.Errorf("distinct locations: %w", err)
	}
	defer locRows.Close()
	for locRows.Next() {
		var location string
		if err := locRows.Scan(&location); err != nil {
			return nil, err
		}
		stats.Locations = append(stats.Locations, location)
	}
	if err := locRows.Err(); err != nil {
		return nil, err
	}

	stats.UniqueMajors = len(stats.Majors)
	stats.UniqueLocations = len(stats.Locations)
	return stats, nil
}

// marshalList encodes a string list for a JSON text column. A nil list
// encodes as [].
func marshalList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := sonic.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(data), nil
}

// unmarshalList decodes a JSON text column into a string list. NULL and
// empty text decode as an empty list.
func unmarshalList(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return []string{}, nil
	}
	var list []string
	if err := sonic.Unmarshal([]byte(raw.String), &list); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func (s *Store) recordInsert(table string) {
	if s.metrics != nil {
		s.metrics.RecordInsert(table)
	}
}

func (s *Store) recordInsertError(table string) {
	if s.metrics != nil {
		s.metrics.RecordInsertError(table)
	}
}
