// Package storage - In-memory backend
package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"buildcost/internal/errors"
)

// MemoryStore keeps estimates in process memory. Useful for tests and
// the live-preview path, which never persists.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*StoredEstimate
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*StoredEstimate)}
}

// Save stores an estimate
func (s *MemoryStore) Save(_ context.Context, record *StoredEstimate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(record)
	copied := *record
	s.records[record.ID] = &copied
	return nil
}

// Get retrieves an estimate by ID
func (s *MemoryStore) Get(_ context.Context, id string) (*StoredEstimate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, errors.NotFound("estimate", id)
	}
	copied := *record
	return &copied, nil
}

// List lists estimates, newest first
func (s *MemoryStore) List(_ context.Context, filter *ListFilter) ([]*StoredEstimate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*StoredEstimate
	for _, record := range s.records {
		if filter != nil && filter.ProjectID != "" && record.ProjectID != filter.ProjectID {
			continue
		}
		copied := *record
		results = append(results, &copied)
	}

	sortNewestFirst(results)
	if filter != nil && filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}
	return results, nil
}

// GetLatest gets the most recent estimate for a project
func (s *MemoryStore) GetLatest(ctx context.Context, projectID string) (*StoredEstimate, error) {
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
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return errors.NotFound("estimate", id)
	}
	delete(s.records, id)
	return nil
}

// Close is a no-op for the memory backend
func (s *MemoryStore) Close() error {
	return nil
}

// stamp fills in identity and creation time when unset
func stamp(record *StoredEstimate) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
}

// sortNewestFirst orders records by creation time descending, with the
// id as a tie-break so equal timestamps still order deterministically
func sortNewestFirst(records []*StoredEstimate) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].ID > records[j].ID
	})
}
