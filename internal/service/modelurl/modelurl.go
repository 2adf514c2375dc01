// Package modelurl provides locally used types and their structure for URL handling between modules.
package modelurl

import "time"

// FullURL is one stored link as shown on the admin page.
type FullURL struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	SURL      string    `json:"short"`
	CreatedAt time.Time `json:"date"`
}
