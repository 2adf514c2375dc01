// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

// ResponseShortURL is the JSON answer of the shortening endpoint.
type ResponseShortURL struct {
	ShortURL string `json:"shortURL,omitempty"`
}
