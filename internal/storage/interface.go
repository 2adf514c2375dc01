// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/danilovkiri/dk_go_shortify/internal/service/modelurl"
)

// URLSetter defines a set of methods for types implementing URLSetter.
type URLSetter interface {
	// Dump stores URL under sURL. If URL is already stored, an *errors.AlreadyExistsError carrying
	// the existing sURL is returned.
	Dump(ctx context.Context, URL string, sURL string) error
}

// URLGetter defines a set of methods for types implementing URLGetter.
type URLGetter interface {
	Retrieve(ctx context.Context, sURL string) (URL string, err error)
	RetrieveAll(ctx context.Context) (URLs []modelurl.FullURL, err error)
}

// URLDeleter defines a set of methods for types implementing URLDeleter.
type URLDeleter interface {
	// Delete removes the entry with the given ID and returns its sURL.
	Delete(ctx context.Context, id int64) (sURL string, err error)
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB() error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// URLStorage defines a set of embedded interfaces for types implementing URLStorage.
type URLStorage interface {
	URLSetter
	URLGetter
	URLDeleter
	Pinger
	Closer
}
