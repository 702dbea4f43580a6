// Package storage - SQLite backend
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"buildcost/internal/errors"
)

// SQLiteStore keeps estimates in a single-file SQLite database.
// The record payload is stored as JSON; project id and creation time
// are indexed columns for filtering.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS estimates (
	id         TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	payload    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_estimates_project ON estimates(project_id, created_at);
`

// NewSQLiteStore opens (or creates) the database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New(errors.TypeStorage, "sqlite store requires a database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Storage("failed to create database directory", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Storage("failed to open database", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, errors.Storage("failed to initialize schema", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save stores an estimate
func (s *SQLiteStore) Save(ctx context.Context, record *StoredEstimate) error {
	stamp(record)

	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Storage("failed to encode estimate", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO estimates (id, project_id, created_at, payload) VALUES (?, ?, ?, ?)`,
		record.ID, record.ProjectID, record.CreatedAt.UnixNano(), string(payload))
	if err != nil {
		return errors.Storage("failed to write estimate", err)
	}
	return nil
}

// Get retrieves an estimate by ID
func (s *SQLiteStore) Get(ctx context.Context, id string) (*StoredEstimate, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM estimates WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("estimate", id)
	}
	if err != nil {
		return nil, errors.Storage("failed to read estimate", err)
	}
	return decodePayload(payload)
}

// List lists estimates, newest first
func (s *SQLiteStore) List(ctx context.Context, filter *ListFilter) ([]*StoredEstimate, error) {
	query := `SELECT payload FROM estimates`
	var args []interface{}
	if filter != nil && filter.ProjectID != "" {
		query += ` WHERE project_id = ?`
		args = append(args, filter.ProjectID)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter != nil && filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Storage("failed to list estimates", err)
	}
	defer rows.Close()

	var results []*StoredEstimate
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Storage("failed to scan estimate", err)
		}
		record, err := decodePayload(payload)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage("failed to iterate estimates", err)
	}
	return results, nil
}

// GetLatest gets the most recent estimate for a project
func (s *SQLiteStore) GetLatest(ctx context.Context, projectID string) (*StoredEstimate, error) {
	results, err := s.List(ctx, &ListFilter{ProjectID: projectID, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.NotFound("estimate for project", projectID)
	}
	return results[0], nil
}

// Delete removes an estimate
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		return errors.Storage("failed to delete estimate", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Storage("failed to confirm delete", err)
	}
	if affected == 0 {
		return errors.NotFound("estimate", id)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func decodePayload(payload string) (*StoredEstimate, error) {
	var record StoredEstimate
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, errors.Storage("failed to decode estimate", err)
	}
	return &record, nil
}
