package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	storageErrors "github.com/danilovkiri/dk_go_shortify/internal/storage/errors"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/modelstorage"
)

type failingJournal struct{}

func (failingJournal) Append(modelstorage.URLStorageEntry) error {
	return errors.New("disk full")
}

func TestStorage_DumpRetrieve(t *testing.T) {
	s := InitStorage(zap.NewNop().Sugar())
	ctx := context.Background()
	require.NoError(t, s.Dump(ctx, "https://yandex.ru", "abc"))

	URL, err := s.Retrieve(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://yandex.ru", URL)

	_, err = s.Retrieve(ctx, "zzz")
	var notFound *storageErrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStorage_DumpExistingURL(t *testing.T) {
	s := InitStorage(zap.NewNop().Sugar())
	ctx := context.Background()
	require.NoError(t, s.Dump(ctx, "https://yandex.ru", "abc"))

	err := s.Dump(ctx, "https://yandex.ru", "def")
	var exists *storageErrors.AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "abc", exists.ValidSURL)

	err = s.Dump(ctx, "https://google.com", "abc")
	require.ErrorAs(t, err, &exists)
	assert.Empty(t, exists.ValidSURL)
}

func TestStorage_RetrieveAllDelete(t *testing.T) {
	s := InitStorage(zap.NewNop().Sugar())
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()
	require.NoError(t, s.Dump(ctx, "https://a.com", "a"))
	require.NoError(t, s.Dump(ctx, "https://b.com", "b"))

	URLs, err := s.RetrieveAll(ctx)
	require.NoError(t, err)
	require.Len(t, URLs, 2)
	assert.Equal(t, int64(1), URLs[0].ID)
	assert.Equal(t, "a", URLs[0].SURL)
	assert.Equal(t, fixed, URLs[0].CreatedAt)
	assert.Equal(t, int64(2), URLs[1].ID)

	sURL, err := s.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", sURL)
	_, err = s.Retrieve(ctx, "a")
	assert.Error(t, err)

	_, err = s.Delete(ctx, 1)
	var idNotFound *storageErrors.IDNotFoundError
	assert.ErrorAs(t, err, &idNotFound)

	// the URL may be shortened again after deletion
	assert.NoError(t, s.Dump(ctx, "https://a.com", "c"))
}

func TestStorage_ContextDone(t *testing.T) {
	s := InitStorage(zap.NewNop().Sugar())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// hold the lock so the worker goroutine cannot answer first
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.Retrieve(ctx, "abc")
	var timeout *storageErrors.ContextTimeoutExceededError
	assert.ErrorAs(t, err, &timeout)
}

func TestStorage_JournalFailure(t *testing.T) {
	s := InitStorage(zap.NewNop().Sugar())
	s.SetJournal(failingJournal{})
	err := s.Dump(context.Background(), "https://a.com", "a")
	var writeErr *storageErrors.FileWriteError
	assert.ErrorAs(t, err, &writeErr)
	assert.Empty(t, s.DB)
}

func TestStorage_Load(t *testing.T) {
	s := InitStorage(zap.NewNop().Sugar())
	s.Load([]modelstorage.URLStorageEntry{
		{ID: 1, SURL: "a", URL: "https://a.com"},
		{ID: 2, SURL: "b", URL: "https://b.com"},
		{ID: 1, SURL: "a", Deleted: true},
	})
	assert.Len(t, s.DB, 1)
	require.NoError(t, s.Dump(context.Background(), "https://c.com", "c"))
	assert.Equal(t, int64(3), s.DB["c"].ID)
}
