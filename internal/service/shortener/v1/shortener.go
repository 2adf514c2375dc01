// Package shortener provides functionality for creating a short unique identifier for a string.
package shortener

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/speps/go-hashids/v2"

	serviceErrors "github.com/danilovkiri/dk_go_shortify/internal/service/errors"
	"github.com/danilovkiri/dk_go_shortify/internal/service/modelurl"
	"github.com/danilovkiri/dk_go_shortify/internal/service/shortener"
	"github.com/danilovkiri/dk_go_shortify/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_shortify/internal/storage/errors"
)

const SaltKey = "Shortify in GO"
const MinLength = 3

// slug collisions are retried this many times before giving up
const maxAttempts = 3

// Check interface implementation explicitly
var (
	_ shortener.Processor = (*Shortener)(nil)
)

// Shortener struct defines data structure handling and provides support for adding new implementations.
type Shortener struct {
	hashID     *hashids.HashID
	URLStorage storage.URLStorage
	now        func() time.Time
}

// InitShortener initializes a Shortener object and sets its attributes.
func InitShortener(s storage.URLStorage) (*Shortener, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	hd := hashids.NewData()
	hd.Salt = SaltKey
	hd.MinLength = MinLength
	hashID, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, &serviceErrors.ServiceInitHashError{Msg: err.Error()}
	}
	return &Shortener{
		hashID:     hashID,
		URLStorage: s,
		now:        time.Now,
	}, nil
}

// Encode returns the sURL of an already shortened URL, or generates, stores and returns a new one.
func (short *Shortener) Encode(ctx context.Context, URL string) (sURL string, err error) {
	if err := validation.Validate(URL, validation.Required, is.RequestURL); err != nil {
		return "", &serviceErrors.ServiceIncorrectInputURL{Msg: err.Error()}
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		sURL, err = short.generateSlug()
		if err != nil {
			return "", &serviceErrors.ServiceEncodingHashError{Msg: err.Error()}
		}
		err = short.URLStorage.Dump(ctx, URL, sURL)
		var exists *storageErrors.AlreadyExistsError
		switch {
		case err == nil:
			return sURL, nil
		case errors.As(err, &exists) && exists.ValidSURL != "":
			return exists.ValidSURL, nil
		case errors.As(err, &exists):
			continue
		default:
			return "", err
		}
	}
	return "", err
}

// Decode retrieves and returns URL based on the given sURL as a key.
func (short *Shortener) Decode(ctx context.Context, sURL string) (URL string, err error) {
	return short.URLStorage.Retrieve(ctx, sURL)
}

// List returns every stored link.
func (short *Shortener) List(ctx context.Context) (URLs []modelurl.FullURL, err error) {
	return short.URLStorage.RetrieveAll(ctx)
}

// Delete removes the link with the given ID.
func (short *Shortener) Delete(ctx context.Context, id int64) error {
	_, err := short.URLStorage.Delete(ctx, id)
	return err
}

func (short *Shortener) PingDB() error {
	return short.URLStorage.PingDB()
}

// generateSlug generates and returns a short unique identifier.
func (short *Shortener) generateSlug() (slug string, err error) {
	now := short.now().UnixNano()
	return short.hashID.Encode([]int{int(now)})
}
