package store

import (
	"context"
	"database/sql"

	"github.com/keepsakelabs/keepsake-api/internal/domain"
)

// CollectionSchemaVersion is the version tag written with every persisted
// collection blob. Bump when the serialized memory schema changes and add a
// migration path in the store implementation.
const CollectionSchemaVersion = 1

// CollectionStore defines the persistence boundary for the memory
// collection. The whole collection is loaded and saved as one unit under a
// fixed key; ordering of the slice is the canonical insertion order
// (most-recently-created first).
type CollectionStore interface {
	// LoadAll retrieves the full memory collection in stored order.
	// Returns an empty slice when nothing has been persisted yet.
	// Returns ErrStorageUnavailable if the persistence medium fails and
	// ErrUnsupportedVersion if the stored blob has an unknown version tag.
	LoadAll(ctx context.Context) ([]*domain.Memory, error)

	// SaveAll atomically replaces the persisted collection with the given
	// memories, preserving slice order. Returns ErrStorageUnavailable if
	// the write cannot be completed; the previously persisted state is
	// untouched in that case.
	SaveAll(ctx context.Context, memories []*domain.Memory) error

	// WithTx returns a new CollectionStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service running a load-modify-save cycle).
	WithTx(tx *sql.Tx) CollectionStore

	// DB returns the underlying database handle, for callers that need to
	// open transactions spanning a load-modify-save cycle.
	DB() *sql.DB
}
