// Package storage persists estimate results for later retrieval and
// comparison. The engine never touches storage; callers snapshot the
// returned result here.
package storage

import (
	"context"
	"time"

	"buildcost/core/types"
	"buildcost/internal/errors"
)

// Backend is a storage backend type
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// StoredEstimate is one persisted estimation
type StoredEstimate struct {
	// ID is the unique record identifier
	ID string `json:"id"`

	// ProjectID groups estimates belonging to one project
	ProjectID string `json:"project_id"`

	// Spec is the input snapshot
	Spec types.BuildSpec `json:"spec"`

	// Result is the estimate snapshot
	Result *types.EstimateResult `json:"result"`

	// CreatedAt is when the record was saved
	CreatedAt time.Time `json:"created_at"`
}

// ListFilter narrows List results
type ListFilter struct {
	// ProjectID limits results to one project when set
	ProjectID string

	// Limit caps the number of results; zero means no cap
	Limit int
}

// Store is the storage interface
type Store interface {
	// Save stores an estimate, assigning ID and CreatedAt when unset
	Save(ctx context.Context, record *StoredEstimate) error

	// Get retrieves an estimate by ID
	Get(ctx context.Context, id string) (*StoredEstimate, error)

	// List lists estimates, newest first
	List(ctx context.Context, filter *ListFilter) ([]*StoredEstimate, error)

	// GetLatest gets the most recent estimate for a project
	GetLatest(ctx context.Context, projectID string) (*StoredEstimate, error)

	// Delete removes an estimate
	Delete(ctx context.Context, id string) error

	// Close closes the store
	Close() error
}

// New creates a store for the given backend. Path is the storage
// directory for the file backend and the database file for sqlite;
// the memory backend ignores it.
func New(backend Backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, errors.Newf(errors.TypeStorage, "unknown storage backend: %s", backend)
	}
}
