// Package storage - File backend
package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"buildcost/internal/errors"
)

// FileStore keeps one JSON file per estimate under a directory
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns the store
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New(errors.TypeStorage, "file store requires a directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Storage("failed to create storage directory", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save stores an estimate as <id>.json
func (s *FileStore) Save(_ context.Context, record *StoredEstimate) error {
	stamp(record)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Storage("failed to encode estimate", err)
	}
	if err := os.WriteFile(s.path(record.ID), data, 0644); err != nil {
		return errors.Storage("failed to write estimate", err)
	}
	return nil
}

// Get retrieves an estimate by ID
func (s *FileStore) Get(_ context.Context, id string) (*StoredEstimate, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("estimate", id)
		}
		return nil, errors.Storage("failed to read estimate", err)
	}

	var record StoredEstimate
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Storage("failed to decode estimate", err)
	}
	return &record, nil
}

// List lists estimates, newest first
func (s *FileStore) List(ctx context.Context, filter *ListFilter) ([]*StoredEstimate, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Storage("failed to read storage directory", err)
	}

	var results []*StoredEstimate
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		record, err := s.Get(ctx, strings.TrimSuffix(de.Name(), ".json"))
		if err != nil {
			// Skip unreadable entries rather than failing the listing
			continue
		}
		if filter != nil && filter.ProjectID != "" && record.ProjectID != filter.ProjectID {
			continue
		}
		results = append(results, record)
	}

	sortNewestFirst(results)
	if filter != nil && filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}
	return results, nil
}

// GetLatest gets the most recent estimate for a project
func (s *FileStore) GetLatest(ctx context.Context, projectID string) (*StoredEstimate, error) {
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
func (s *FileStore) Delete(_ context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound("estimate", id)
		}
		return errors.Storage("failed to delete estimate", err)
	}
	return nil
}

// Close is a no-op for the file backend
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
