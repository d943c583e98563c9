package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keepsakelabs/keepsake-api/internal/domain"
	"github.com/keepsakelabs/keepsake-api/internal/store"
)

// fakeCollectionStore keeps the collection in memory while delegating
// transaction management to a sqlmock database handle.
type fakeCollectionStore struct {
	db       *sql.DB
	memories []*domain.Memory
	loadErr  error
	saveErr  error
	saves    int
}

func (f *fakeCollectionStore) LoadAll(ctx context.Context) ([]*domain.Memory, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.memories, nil
}

func (f *fakeCollectionStore) SaveAll(ctx context.Context, memories []*domain.Memory) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.memories = memories
	f.saves++
	return nil
}

func (f *fakeCollectionStore) WithTx(tx *sql.Tx) store.CollectionStore {
	return f
}

func (f *fakeCollectionStore) DB() *sql.DB {
	return f.db
}

func newTestService(
	t *testing.T,
	memories ...*domain.Memory,
) (MemoryService, *fakeCollectionStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	collection := &fakeCollectionStore{db: db, memories: memories}
	svc, err := NewMemoryService(collection, nil)
	require.NoError(t, err)

	return svc, collection, mock
}

func storedMemory(t *testing.T, capturedAt time.Time, notes string) *domain.Memory {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err)
	return &domain.Memory{
		ID:         id,
		PhotoData:  []byte("photo-bytes"),
		CapturedAt: capturedAt,
		FilterID:   domain.FilterNone,
		Notes:      notes,
	}
}

func TestNewMemoryService(t *testing.T) {
	t.Run("rejects nil store", func(t *testing.T) {
		svc, err := NewMemoryService(nil, nil)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestMemoryService_List(t *testing.T) {
	march := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	newer := storedMemory(t, march.Add(time.Hour), "newer")
	older := storedMemory(t, march, "older")
	svc, _, _ := newTestService(t, newer, older)

	memories, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, memories, 2)
	assert.Equal(t, "newer", memories[0].Notes, "stored order is most-recent-first")
}

func TestMemoryService_List_StorageError(t *testing.T) {
	svc, collection, _ := newTestService(t)
	collection.loadErr = store.ErrStorageUnavailable

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestMemoryService_Get(t *testing.T) {
	march := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	memory := storedMemory(t, march, "target")
	svc, _, _ := newTestService(t, memory)

	t.Run("found", func(t *testing.T) {
		got, err := svc.Get(context.Background(), memory.ID)
		require.NoError(t, err)
		assert.Equal(t, memory.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrMemoryNotFound)
	})
}

func TestMemoryService_Create(t *testing.T) {
	march := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	t.Run("prepends to the collection", func(t *testing.T) {
		existing := storedMemory(t, march, "existing")
		svc, collection, mock := newTestService(t, existing)

		mock.ExpectBegin()
		mock.ExpectCommit()

		memory, err := svc.Create(context.Background(), []byte("new-photo"), "vintage", "new one")

		require.NoError(t, err)
		assert.Equal(t, "vintage", memory.FilterID)
		require.Len(t, collection.memories, 2)
		assert.Equal(t, memory.ID, collection.memories[0].ID, "new memory must be first")
		assert.Equal(t, existing.ID, collection.memories[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("validation failure never touches storage", func(t *testing.T) {
		svc, collection, mock := newTestService(t)

		_, err := svc.Create(context.Background(), nil, domain.FilterNone, "")

		assert.ErrorIs(t, err, domain.ErrEmptyPhotoData)
		assert.Zero(t, collection.saves)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save failure rolls back", func(t *testing.T) {
		svc, collection, mock := newTestService(t)
		collection.saveErr = store.ErrStorageUnavailable

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(context.Background(), []byte("photo"), domain.FilterNone, "")

		assert.ErrorIs(t, err, store.ErrStorageUnavailable)
		assert.Empty(t, collection.memories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemoryService_UpdateNotes(t *testing.T) {
	march := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	t.Run("replaces only the notes", func(t *testing.T) {
		memory := storedMemory(t, march, "before")
		other := storedMemory(t, march.Add(time.Hour), "untouched")
		svc, collection, mock := newTestService(t, other, memory)

		mock.ExpectBegin()
		mock.ExpectCommit()

		updated, err := svc.UpdateNotes(context.Background(), memory.ID, "after")

		require.NoError(t, err)
		assert.Equal(t, "after", updated.Notes)
		assert.Equal(t, memory.ID, updated.ID)
		assert.Equal(t, memory.PhotoData, updated.PhotoData)
		assert.Equal(t, memory.CapturedAt, updated.CapturedAt)

		require.Len(t, collection.memories, 2)
		assert.Equal(t, "untouched", collection.memories[0].Notes)
		assert.Equal(t, "after", collection.memories[1].Notes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clears notes with empty string", func(t *testing.T) {
		memory := storedMemory(t, march, "something")
		svc, _, mock := newTestService(t, memory)

		mock.ExpectBegin()
		mock.ExpectCommit()

		updated, err := svc.UpdateNotes(context.Background(), memory.ID, "")

		require.NoError(t, err)
		assert.Empty(t, updated.Notes)
	})

	t.Run("missing memory", func(t *testing.T) {
		svc, collection, mock := newTestService(t, storedMemory(t, march, ""))

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.UpdateNotes(context.Background(), uuid.New(), "anything")

		assert.ErrorIs(t, err, ErrMemoryNotFound)
		assert.Zero(t, collection.saves)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemoryService_Delete(t *testing.T) {
	march := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	t.Run("removes the matching memory", func(t *testing.T) {
		target := storedMemory(t, march, "doomed")
		survivor := storedMemory(t, march.Add(time.Hour), "survivor")
		svc, collection, mock := newTestService(t, survivor, target)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := svc.Delete(context.Background(), target.ID)

		require.NoError(t, err)
		require.Len(t, collection.memories, 1)
		assert.Equal(t, survivor.ID, collection.memories[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent memory is a no-op", func(t *testing.T) {
		memory := storedMemory(t, march, "kept")
		svc, collection, mock := newTestService(t, memory)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := svc.Delete(context.Background(), uuid.New())

		require.NoError(t, err)
		assert.Len(t, collection.memories, 1)
		assert.Zero(t, collection.saves, "no-op deletes must skip the write")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMemoryService_Search(t *testing.T) {
	march := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 20, 10, 0, 0, 0, time.UTC)
	beach := storedMemory(t, march, "Beach day with friends")
	hike := storedMemory(t, april, "mountain hike")
	svc, _, _ := newTestService(t, hike, beach)

	t.Run("matches notes case-insensitively", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "BEACH")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, beach.ID, got[0].ID)
	})

	t.Run("matches display date", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "april")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, hike.ID, got[0].ID)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "   ")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "snowstorm")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMemoryService_Count(t *testing.T) {
	march := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, storedMemory(t, march, ""), storedMemory(t, march, ""))

	count, err := svc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFilterMemories(t *testing.T) {
	march := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	first := storedMemory(t, march, "picnic in the park")
	second := storedMemory(t, march, "park run")
	third := storedMemory(t, march.AddDate(0, 1, 0), "quiet morning")
	memories := []*domain.Memory{first, second, third}

	t.Run("preserves order across matches", func(t *testing.T) {
		got := FilterMemories(memories, "park")
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got := FilterMemories(memories, "  picnic  ")
		require.Len(t, got, 1)
		assert.Equal(t, first.ID, got[0].ID)
	})

	t.Run("date fragment matches all memories of that month", func(t *testing.T) {
		got := FilterMemories(memories, "march 7")
		assert.Len(t, got, 2)
	})
}

func TestGroupByDay(t *testing.T) {
	march7 := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)
	march8 := time.Date(2025, time.March, 8, 9, 0, 0, 0, time.UTC)
	a := storedMemory(t, march7, "a")
	b := storedMemory(t, march7.Add(2*time.Hour), "b")
	c := storedMemory(t, march8, "c")

	groups := GroupByDay([]*domain.Memory{c, b, a})

	require.Len(t, groups, 2)
	assert.Len(t, groups["2025-03-07"], 2)
	assert.Len(t, groups["2025-03-08"], 1)

	keys := SortedDayKeys(groups)
	assert.Equal(t, []string{"2025-03-08", "2025-03-07"}, keys, "newest day first")
}

func TestNewMemoryServiceError(t *testing.T) {
	t.Run("nil error passes through", func(t *testing.T) {
		assert.NoError(t, NewMemoryServiceError("op", "msg", nil))
	})

	t.Run("store not-found maps to service sentinel", func(t *testing.T) {
		err := NewMemoryServiceError("op", "msg", store.ErrMemoryNotFound)
		assert.ErrorIs(t, err, ErrMemoryNotFound)
	})

	t.Run("storage unavailable passes through", func(t *testing.T) {
		err := NewMemoryServiceError("op", "msg", store.ErrStorageUnavailable)
		assert.ErrorIs(t, err, store.ErrStorageUnavailable)
	})

	t.Run("other errors get wrapped with context", func(t *testing.T) {
		inner := errors.New("boom")
		err := NewMemoryServiceError("create_memory", "failed", inner)

		var svcErr *MemoryServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create_memory", svcErr.Operation)
		assert.ErrorIs(t, err, inner)
	})
}
