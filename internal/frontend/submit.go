package frontend

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/api/rest/modeldto"
)

const formContentType = "application/x-www-form-urlencoded"

var errNotObject = errors.New("response is not a JSON object")

// Submitter sends the link form to its destination instead of navigating away.
type Submitter struct {
	client *resty.Client
	log    *zap.SugaredLogger
}

// NewSubmitter returns a Submitter using client for requests.
func NewSubmitter(client *resty.Client, log *zap.SugaredLogger) *Submitter {
	return &Submitter{client: client, log: log}
}

// Submit posts the form fields URL-encoded to the form action with the form method. When the JSON
// answer carries a non-empty shortURL the result is shown and true is returned. Transport and
// decoding failures, including a body that is not a JSON object, are logged and leave the view untouched, as does an answer without shortURL.
func (s *Submitter) Submit(ctx context.Context, form Form, v *View) bool {
	if form == nil {
		s.log.Debug("Submission skipped: no form on the page")
		return false
	}
	res, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", formContentType).
		SetBody(form.Values().Encode()).
		Execute(form.Method(), form.Action())
	if err != nil {
		s.log.Errorw("Submission failed", "action", form.Action(), "error", err)
		return false
	}
	var data *modeldto.ResponseShortURL
	if err := json.Unmarshal(res.Body(), &data); err != nil {
		s.log.Errorw("Submission failed", "action", form.Action(), "status", res.StatusCode(), "error", err)
		return false
	}
	if data == nil {
		s.log.Errorw("Submission failed", "action", form.Action(), "status", res.StatusCode(), "error", errNotObject)
		return false
	}
	if data.ShortURL == "" {
		s.log.Debugw("Submission produced no short URL", "status", res.StatusCode())
		return false
	}
	ShowResult(v, data.ShortURL)
	return true
}
