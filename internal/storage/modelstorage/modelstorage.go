// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

import "time"

// URLStorageEntry is one line of the file storage.
type URLStorageEntry struct {
	ID        int64     `json:"id"`
	SURL      string    `json:"sURL"`
	URL       string    `json:"URL"`
	CreatedAt time.Time `json:"date"`
	Deleted   bool      `json:"deleted,omitempty"`
}

// URLMapEntry is the in-memory value keyed by sURL.
type URLMapEntry struct {
	ID        int64
	URL       string
	CreatedAt time.Time
}
