// Package shortener provides interfaces for types to be in compliance with.
package shortener

import (
	"context"

	"github.com/danilovkiri/dk_go_shortify/internal/service/modelurl"
)

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	Encode(ctx context.Context, URL string) (sURL string, err error)
	Decode(ctx context.Context, sURL string) (URL string, err error)
	List(ctx context.Context) (URLs []modelurl.FullURL, err error)
	Delete(ctx context.Context, id int64) error
	PingDB() error
}
