// Package infile provides data types and methods for local file storage operations.
package infile

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/storage"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.URLStorage = (*Storage)(nil)
	_ inmemory.Journal   = (*Storage)(nil)
)

// Storage keeps entries in memory and appends every change to a JSON-lines file.
type Storage struct {
	*inmemory.Storage
	path    string
	encoder *json.Encoder
	log     *zap.SugaredLogger
}

// InitStorage restores the file contents and starts a goroutine closing the file once ctx is done.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, path string, log *zap.SugaredLogger) (*Storage, error) {
	st := &Storage{
		Storage: inmemory.InitStorage(log),
		path:    path,
		log:     log,
	}
	if err := st.restore(); err != nil {
		return nil, err
	}
	// open file outside goroutine since this operation might not finish prior to encoding operations
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	st.encoder = json.NewEncoder(file)
	st.SetJournal(st)
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := file.Close(); err != nil {
			log.Errorw("File storage closure failed", "error", err)
			return
		}
		log.Info("File storage closed successfully")
	}()
	return st, nil
}

// Append writes one entry to the file.
func (s *Storage) Append(entry modelstorage.URLStorageEntry) error {
	return s.encoder.Encode(entry)
}

// restore fills the map with entries from file storage.
func (s *Storage) restore() error {
	file, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	var entries []modelstorage.URLStorageEntry
	reader := bufio.NewScanner(file)
	for reader.Scan() {
		var entry modelstorage.URLStorageEntry
		if err := json.Unmarshal(reader.Bytes(), &entry); err != nil {
			return err
		}
		entries = append(entries, entry)
	}
	if err := reader.Err(); err != nil {
		return err
	}
	s.Load(entries)
	s.log.Infow("DB was restored", "path", s.path, "records", len(entries))
	return nil
}
