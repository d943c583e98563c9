package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/keepsakelabs/keepsake-api/internal/domain"
	"github.com/keepsakelabs/keepsake-api/internal/platform/logger"
	"github.com/keepsakelabs/keepsake-api/internal/store"
)

// collectionKey is the fixed row key the whole memory collection lives
// under. The collection is always loaded and saved as one value, so a
// single keyed row is the whole table in practice.
const collectionKey = "memories"

// collectionBlob is the on-disk shape of the persisted collection.
type collectionBlob struct {
	Version  int              `json:"version"`
	Memories []*domain.Memory `json:"memories"`
}

// PostgresCollectionStore implements the store.CollectionStore interface
// using a PostgreSQL database as the storage backend. The collection is
// stored as a single versioned JSONB blob.
type PostgresCollectionStore struct {
	db     store.DBTX
	sqlDB  *sql.DB
	logger *slog.Logger
}

// NewPostgresCollectionStore creates a new PostgreSQL implementation of the
// CollectionStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewPostgresCollectionStore(db *sql.DB, log *slog.Logger) *PostgresCollectionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresCollectionStore{
		db:     db,
		sqlDB:  db,
		logger: log.With(slog.String("component", "collection_store")),
	}
}

// Ensure PostgresCollectionStore implements store.CollectionStore interface
var _ store.CollectionStore = (*PostgresCollectionStore)(nil)

// WithTx returns a copy of the store that runs its statements on the given
// transaction. The underlying *sql.DB is retained so DB() keeps working.
func (s *PostgresCollectionStore) WithTx(tx *sql.Tx) store.CollectionStore {
	return &PostgresCollectionStore{
		db:     tx,
		sqlDB:  s.sqlDB,
		logger: s.logger,
	}
}

// DB returns the underlying database connection.
func (s *PostgresCollectionStore) DB() *sql.DB {
	return s.sqlDB
}

// LoadAll implements store.CollectionStore.LoadAll.
// It reads the collection blob and returns the memories in stored order.
// A missing row means nothing has been captured yet and yields an empty slice.
func (s *PostgresCollectionStore) LoadAll(ctx context.Context) ([]*domain.Memory, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT payload
		FROM memory_collections
		WHERE key = $1
	`

	var payload []byte
	err := s.db.QueryRowContext(ctx, query, collectionKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no memory collection persisted yet")
			return []*domain.Memory{}, nil
		}
		log.Error("failed to load memory collection",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}

	var blob collectionBlob
	if err := json.Unmarshal(payload, &blob); err != nil {
		log.Error("failed to decode memory collection blob",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("collection", "load", "malformed payload", err)
	}

	if blob.Version != store.CollectionSchemaVersion {
		log.Error("memory collection has unsupported version",
			slog.Int("version", blob.Version),
			slog.Int("supported", store.CollectionSchemaVersion))
		return nil, fmt.Errorf("%w: got %d, want %d",
			store.ErrUnsupportedVersion, blob.Version, store.CollectionSchemaVersion)
	}

	if blob.Memories == nil {
		blob.Memories = []*domain.Memory{}
	}

	log.Debug("memory collection loaded", slog.Int("count", len(blob.Memories)))
	return blob.Memories, nil
}

// SaveAll implements store.CollectionStore.SaveAll.
// It replaces the persisted collection blob in a single upsert, so the write
// either fully succeeds or leaves the previous state untouched.
func (s *PostgresCollectionStore) SaveAll(ctx context.Context, memories []*domain.Memory) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if memories == nil {
		memories = []*domain.Memory{}
	}

	payload, err := json.Marshal(collectionBlob{
		Version:  store.CollectionSchemaVersion,
		Memories: memories,
	})
	if err != nil {
		log.Error("failed to encode memory collection blob",
			slog.String("error", err.Error()))
		return store.NewStoreError("collection", "save", "encode failed", err)
	}

	query := `
		INSERT INTO memory_collections (key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`

	_, err = s.db.ExecContext(ctx, query, collectionKey, payload, time.Now().UTC())
	if err != nil {
		log.Error("failed to save memory collection",
			slog.String("error", err.Error()),
			slog.Int("count", len(memories)))
		return fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}

	log.Debug("memory collection saved", slog.Int("count", len(memories)))
	return nil
}
