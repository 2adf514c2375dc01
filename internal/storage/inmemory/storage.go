// Package inmemory provides functionality for dumping/retrieving pairs of URL and sURL to/from local
// storage implemented as a map.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/service/modelurl"
	"github.com/danilovkiri/dk_go_shortify/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortify/internal/storage/errors"
	"github.com/danilovkiri/dk_go_shortify/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.URLStorage = (*Storage)(nil)
)

// Journal receives every change applied to the map; file storage uses it to persist entries.
type Journal interface {
	Append(entry modelstorage.URLStorageEntry) error
}

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu      sync.Mutex
	DB      map[string]modelstorage.URLMapEntry
	byURL   map[string]string
	byID    map[int64]string
	lastID  int64
	journal Journal
	log     *zap.SugaredLogger
	now     func() time.Time
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage(log *zap.SugaredLogger) *Storage {
	return &Storage{
		DB:    make(map[string]modelstorage.URLMapEntry),
		byURL: make(map[string]string),
		byID:  make(map[int64]string),
		log:   log,
		now:   time.Now,
	}
}

// SetJournal attaches a journal; it must be called before the storage is used.
func (s *Storage) SetJournal(j Journal) {
	s.journal = j
}

// Load replays journal entries into the map.
func (s *Storage) Load(entries []modelstorage.URLStorageEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range entries {
		if entry.ID > s.lastID {
			s.lastID = entry.ID
		}
		if entry.Deleted {
			s.remove(entry.ID)
			continue
		}
		s.put(entry.ID, entry.URL, entry.SURL, entry.CreatedAt)
	}
}

// Retrieve returns a URL corresponding to sURL.
func (s *Storage) Retrieve(ctx context.Context, sURL string) (URL string, err error) {
	// create channels for listening to the go routine result
	retrieveDone := make(chan string, 1)
	retrieveError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		entry, ok := s.DB[sURL]
		if !ok {
			retrieveError <- &storageErrors.NotFoundError{SURL: sURL}
			return
		}
		retrieveDone <- entry.URL
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		s.log.Infow("Retrieving URL", "error", ctx.Err())
		return "", &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case rtrvError := <-retrieveError:
		s.log.Infow("Retrieving URL", "error", rtrvError)
		return "", rtrvError
	case URL := <-retrieveDone:
		s.log.Debugw("Retrieving URL", "sURL", sURL, "URL", URL)
		return URL, nil
	}
}

// RetrieveAll returns every stored entry ordered by ID.
func (s *Storage) RetrieveAll(ctx context.Context) (URLs []modelurl.FullURL, err error) {
	retrieveDone := make(chan []modelurl.FullURL, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		URLs := make([]modelurl.FullURL, 0, len(s.DB))
		for sURL, entry := range s.DB {
			URLs = append(URLs, modelurl.FullURL{
				ID:        entry.ID,
				URL:       entry.URL,
				SURL:      sURL,
				CreatedAt: entry.CreatedAt,
			})
		}
		sort.Slice(URLs, func(i, j int) bool { return URLs[i].ID < URLs[j].ID })
		retrieveDone <- URLs
	}()

	select {
	case <-ctx.Done():
		s.log.Infow("Retrieving all URLs", "error", ctx.Err())
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case URLs := <-retrieveDone:
		s.log.Debugw("Retrieving all URLs", "count", len(URLs))
		return URLs, nil
	}
}

// Dump stores a pair of sURL and URL as a key-value pair.
func (s *Storage) Dump(ctx context.Context, URL string, sURL string) error {
	// create channels for listening to the go routine result
	dumpDone := make(chan bool, 1)
	dumpError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if existing, ok := s.byURL[URL]; ok {
			dumpError <- &storageErrors.AlreadyExistsError{URL: URL, ValidSURL: existing}
			return
		}
		if _, ok := s.DB[sURL]; ok {
			dumpError <- &storageErrors.AlreadyExistsError{URL: URL}
			return
		}
		entry := modelstorage.URLStorageEntry{
			ID:        s.lastID + 1,
			SURL:      sURL,
			URL:       URL,
			CreatedAt: s.now().UTC(),
		}
		if s.journal != nil {
			if err := s.journal.Append(entry); err != nil {
				dumpError <- &storageErrors.FileWriteError{Err: err}
				return
			}
		}
		s.lastID = entry.ID
		s.put(entry.ID, URL, sURL, entry.CreatedAt)
		dumpDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		s.log.Infow("Dumping URL", "error", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case dmpError := <-dumpError:
		s.log.Infow("Dumping URL", "error", dmpError)
		return dmpError
	case <-dumpDone:
		s.log.Debugw("Dumping URL", "sURL", sURL, "URL", URL)
		return nil
	}
}

// Delete removes the entry with the given ID.
func (s *Storage) Delete(ctx context.Context, id int64) (sURL string, err error) {
	deleteDone := make(chan string, 1)
	deleteError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		sURL, ok := s.byID[id]
		if !ok {
			deleteError <- &storageErrors.IDNotFoundError{ID: id}
			return
		}
		if s.journal != nil {
			entry := modelstorage.URLStorageEntry{ID: id, SURL: sURL, Deleted: true}
			if err := s.journal.Append(entry); err != nil {
				deleteError <- &storageErrors.FileWriteError{Err: err}
				return
			}
		}
		s.remove(id)
		deleteDone <- sURL
	}()

	select {
	case <-ctx.Done():
		s.log.Infow("Deleting URL", "error", ctx.Err())
		return "", &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case dltError := <-deleteError:
		s.log.Infow("Deleting URL", "error", dltError)
		return "", dltError
	case sURL := <-deleteDone:
		s.log.Debugw("Deleting URL", "id", id, "sURL", sURL)
		return sURL, nil
	}
}

// PingDB is a mock for PSQL DB pinger.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB is a mock for PSQL DB closer.
func (s *Storage) CloseDB() error {
	return nil
}

func (s *Storage) put(id int64, URL, sURL string, createdAt time.Time) {
	s.DB[sURL] = modelstorage.URLMapEntry{ID: id, URL: URL, CreatedAt: createdAt}
	s.byURL[URL] = sURL
	s.byID[id] = sURL
}

func (s *Storage) remove(id int64) {
	sURL, ok := s.byID[id]
	if !ok {
		return
	}
	delete(s.byURL, s.DB[sURL].URL)
	delete(s.DB, sURL)
	delete(s.byID, id)
}
