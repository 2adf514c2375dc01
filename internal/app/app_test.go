package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/danilovkiri/dk_go_shortify/internal/config"
	"github.com/danilovkiri/dk_go_shortify/internal/mocks"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/cached"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/infile"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/inmemory"
)

func TestStorageKind(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "Default", cfg: config.Config{}, want: StorageMemory},
		{name: "File", cfg: config.Config{FileStoragePath: "urls.json"}, want: StorageFile},
		{name: "DSN wins", cfg: config.Config{FileStoragePath: "urls.json", DatabaseDSN: "postgres://localhost/db"}, want: StoragePostgres},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StorageKind(&tt.cfg))
		})
	}
}

func TestNew_Memory(t *testing.T) {
	app, err := New(context.Background(), config.NewDefaultConfiguration(), zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.IsType(t, &inmemory.Storage{}, app.Storage)
	assert.Equal(t, ":8080", app.Server.Addr)
}

func TestNew_FileWithCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := config.NewDefaultConfiguration()
	cfg.FileStoragePath = filepath.Join(t.TempDir(), "urls.json")
	cfg.RedisAddr = "127.0.0.1:1"

	app, err := New(ctx, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	c, ok := app.Storage.(*cached.Storage)
	require.True(t, ok)
	assert.IsType(t, &infile.Storage{}, c.URLStorage)

	cancel()
	app.Wait()
}

func TestApp_StartShutdown(t *testing.T) {
	cfg := config.NewDefaultConfiguration()
	cfg.ServerAddress = "127.0.0.1:0"
	app, err := New(context.Background(), cfg, zap.NewNop().Sugar())
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- app.Start() }()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}

func TestApp_WaitClosesStorage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "Closed", message: "Storage closed successfully"},
		{name: "Close failed", err: errors.New("already closed"), message: "Storage closure failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			st := mocks.NewMockURLStorage(ctrl)
			st.EXPECT().CloseDB().Return(tt.err).Times(1)
			core, logs := observer.New(zapcore.DebugLevel)

			app := &App{Storage: st, wg: &sync.WaitGroup{}, log: zap.New(core).Sugar()}
			app.Wait()
			assert.Equal(t, 1, logs.FilterMessage(tt.message).Len())
		})
	}
}
