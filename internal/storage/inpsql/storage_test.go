package inpsql

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	storageErrors "github.com/danilovkiri/dk_go_shortify/internal/storage/errors"
)

func getDatabaseStorage(t *testing.T) *Storage {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		t.Skip("Skipping test because DB is not configured")
	}
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	st, err := InitStorage(ctx, wg, dsn, zap.NewNop().Sugar())
	require.NoError(t, err)
	_, err = st.DB.Exec("TRUNCATE links RESTART IDENTITY")
	require.NoError(t, err)
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return st
}

func TestStorage_DumpRetrieve(t *testing.T) {
	st := getDatabaseStorage(t)
	ctx := context.Background()
	require.NoError(t, st.Dump(ctx, "https://go.dev/", "foo"))

	URL, err := st.Retrieve(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev/", URL)

	err = st.Dump(ctx, "https://go.dev/", "bar")
	var exists *storageErrors.AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "foo", exists.ValidSURL)

	_, err = st.Retrieve(ctx, "bar")
	var notFound *storageErrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStorage_RetrieveAllDelete(t *testing.T) {
	st := getDatabaseStorage(t)
	ctx := context.Background()
	require.NoError(t, st.Dump(ctx, "https://a.com", "a"))
	require.NoError(t, st.Dump(ctx, "https://b.com", "b"))

	URLs, err := st.RetrieveAll(ctx)
	require.NoError(t, err)
	require.Len(t, URLs, 2)
	assert.Equal(t, "a", URLs[0].SURL)

	sURL, err := st.Delete(ctx, URLs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "a", sURL)

	_, err = st.Delete(ctx, URLs[0].ID)
	var idNotFound *storageErrors.IDNotFoundError
	assert.ErrorAs(t, err, &idNotFound)
	assert.NoError(t, st.PingDB())
}
