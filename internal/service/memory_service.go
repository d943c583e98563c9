package service

import (
	"context"
	"database/sql"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/keepsakelabs/keepsake-api/internal/domain"
	"github.com/keepsakelabs/keepsake-api/internal/store"
)

// MemoryService provides the memory collection operations: an ordered,
// durable scrapbook of captured moments behind a narrow CRUD contract.
type MemoryService interface {
	// List returns all memories in insertion order, most recently created
	// first.
	List(ctx context.Context) ([]*domain.Memory, error)

	// Get retrieves a single memory by ID.
	// Returns ErrMemoryNotFound if the ID is absent.
	Get(ctx context.Context, id uuid.UUID) (*domain.Memory, error)

	// Create captures a new memory at the head of the collection and
	// persists it atomically.
	Create(ctx context.Context, photoData []byte, filterID, notes string) (*domain.Memory, error)

	// UpdateNotes replaces only the notes of the memory matching id.
	// Returns ErrMemoryNotFound if the ID is absent.
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*domain.Memory, error)

	// Delete removes the memory matching id. Deleting an absent ID is a
	// deliberate no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Search returns memories whose display date or notes contain the
	// query, case-insensitively, preserving List ordering. An empty query
	// matches everything.
	Search(ctx context.Context, query string) ([]*domain.Memory, error)

	// Count returns the number of memories in the collection.
	Count(ctx context.Context) (int, error)
}

// memoryServiceImpl implements the MemoryService interface over a
// CollectionStore. Mutating operations are serialized by a mutex and run
// their load-modify-save cycle inside one database transaction, so each one
// either fully succeeds or leaves the collection unchanged.
type memoryServiceImpl struct {
	collection store.CollectionStore
	logger     *slog.Logger

	// mu serializes mutating operations. Reads go straight to the store.
	mu sync.Mutex
}

// NewMemoryService creates a new MemoryService.
// It returns an error if the collection store is nil.
func NewMemoryService(collection store.CollectionStore, logger *slog.Logger) (MemoryService, error) {
	if collection == nil {
		return nil, &MemoryServiceError{
			Operation: "create_service",
			Message:   "collection store cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &memoryServiceImpl{
		collection: collection,
		logger:     logger.With("component", "memory_service"),
	}, nil
}

// List returns the collection in stored order. Creation prepends, so stored
// order is already most-recent-first.
func (s *memoryServiceImpl) List(ctx context.Context) ([]*domain.Memory, error) {
	memories, err := s.collection.LoadAll(ctx)
	if err != nil {
		s.logger.Error("failed to load memories", "error", err)
		return nil, NewMemoryServiceError("list_memories", "failed to load collection", err)
	}
	return memories, nil
}

// Get retrieves one memory by ID.
func (s *memoryServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Memory, error) {
	memories, err := s.collection.LoadAll(ctx)
	if err != nil {
		s.logger.Error("failed to load memories", "error", err, "memory_id", id)
		return nil, NewMemoryServiceError("get_memory", "failed to load collection", err)
	}

	for _, m := range memories {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, ErrMemoryNotFound
}

// Create builds a new memory and prepends it to the persisted collection.
func (s *memoryServiceImpl) Create(
	ctx context.Context,
	photoData []byte,
	filterID, notes string,
) (*domain.Memory, error) {
	memory, err := domain.NewMemory(photoData, filterID, notes)
	if err != nil {
		s.logger.Warn("memory validation failed during create", "error", err)
		return nil, NewMemoryServiceError("create_memory", "invalid memory data", err)
	}

	err = s.mutate(ctx, func(memories []*domain.Memory) ([]*domain.Memory, error) {
		return append([]*domain.Memory{memory}, memories...), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("memory created",
		"memory_id", memory.ID,
		"filter_id", memory.FilterID)
	return memory, nil
}

// UpdateNotes replaces the notes of the matching memory, leaving every
// other field untouched.
func (s *memoryServiceImpl) UpdateNotes(
	ctx context.Context,
	id uuid.UUID,
	notes string,
) (*domain.Memory, error) {
	var updated *domain.Memory

	err := s.mutate(ctx, func(memories []*domain.Memory) ([]*domain.Memory, error) {
		for i, m := range memories {
			if m.ID == id {
				updated = m.WithNotes(notes)
				next := make([]*domain.Memory, len(memories))
				copy(next, memories)
				next[i] = updated
				return next, nil
			}
		}
		return nil, store.ErrMemoryNotFound
	})
	if err != nil {
		return nil, NewMemoryServiceError("update_notes", "failed to update memory notes", err)
	}

	s.logger.Info("memory notes updated", "memory_id", id)
	return updated, nil
}

// Delete removes the matching memory. An absent ID leaves the collection
// untouched and returns nil.
func (s *memoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.mutate(ctx, func(memories []*domain.Memory) ([]*domain.Memory, error) {
		next := memories[:0:0]
		for _, m := range memories {
			if m.ID != id {
				next = append(next, m)
			}
		}
		if len(next) == len(memories) {
			// Nothing matched; skip the write entirely.
			return nil, errNoChange
		}
		return next, nil
	})
	if err != nil {
		return NewMemoryServiceError("delete_memory", "failed to delete memory", err)
	}

	s.logger.Info("memory deleted", "memory_id", id)
	return nil
}

// Search filters the collection by display date or notes, preserving order.
func (s *memoryServiceImpl) Search(ctx context.Context, query string) ([]*domain.Memory, error) {
	memories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterMemories(memories, query), nil
}

// Count returns how many memories are stored.
func (s *memoryServiceImpl) Count(ctx context.Context) (int, error) {
	memories, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(memories), nil
}

// errNoChange signals a mutation that decided not to write. It never
// escapes mutate.
var errNoChange = &MemoryServiceError{Operation: "mutate", Message: "no change"}

// mutate runs a load-modify-save cycle on the collection inside a single
// transaction, serialized against other mutations.
func (s *memoryServiceImpl) mutate(
	ctx context.Context,
	fn func(memories []*domain.Memory) ([]*domain.Memory, error),
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := store.RunInTransaction(ctx, s.collection.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.collection.WithTx(tx)

		memories, err := txStore.LoadAll(ctx)
		if err != nil {
			return err
		}

		next, err := fn(memories)
		if err != nil {
			return err
		}

		return txStore.SaveAll(ctx, next)
	})

	if err == errNoChange {
		return nil
	}
	return err
}

// FilterMemories returns the memories whose formatted display date or notes
// contain the query, case-insensitively, in their original order. An empty
// query returns everything.
func FilterMemories(memories []*domain.Memory, query string) []*domain.Memory {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return memories
	}

	matched := make([]*domain.Memory, 0, len(memories))
	for _, m := range memories {
		dateStr := strings.ToLower(domain.DisplayDate(m.CapturedAt))
		if strings.Contains(dateStr, q) || strings.Contains(strings.ToLower(m.Notes), q) {
			matched = append(matched, m)
		}
	}
	return matched
}

// GroupByDay buckets memories by their capture day. Within a day, store
// order is preserved. Key ordering is a presentation concern; see
// SortedDayKeys.
func GroupByDay(memories []*domain.Memory) map[string][]*domain.Memory {
	groups := make(map[string][]*domain.Memory)
	for _, m := range memories {
		key := domain.DayKey(m.CapturedAt)
		groups[key] = append(groups[key], m)
	}
	return groups
}

// SortedDayKeys returns the group keys sorted descending, most recent day
// first, the order the scrapbook presents them in.
func SortedDayKeys(groups map[string][]*domain.Memory) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
