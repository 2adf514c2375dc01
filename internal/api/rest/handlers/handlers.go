// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/api/rest/modeldto"
	serviceErrors "github.com/danilovkiri/dk_go_shortify/internal/service/errors"
	"github.com/danilovkiri/dk_go_shortify/internal/service/shortener"
	storageErrors "github.com/danilovkiri/dk_go_shortify/internal/storage/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

// timeout for storage operations of a single request
const opTimeout = 500 * time.Millisecond

const dateLayout = "2006-01-02 15:04:05"

// PageData is passed to the index and 404 templates.
type PageData struct {
	Header string
}

type adminLink struct {
	ID    int64
	URL   string
	Short string
	Date  string
}

// URLHandler defines data structure handling and provides support for adding new implementations.
type URLHandler struct {
	processor shortener.Processor
	baseURL   string
	tmpl      *template.Template
	log       *zap.SugaredLogger
}

// InitURLHandler initializes a URLHandler object and sets its attributes. An empty baseURL makes
// short URLs use the request host.
func InitURLHandler(processor shortener.Processor, baseURL string, log *zap.SugaredLogger) (*URLHandler, error) {
	if processor == nil {
		return nil, fmt.Errorf("nil Shortener Service was passed to service URL Handler initializer")
	}
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if baseURL != "" && !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return &URLHandler{
		processor: processor,
		baseURL:   strings.TrimRight(baseURL, "/"),
		tmpl:      tmpl,
		log:       log,
	}, nil
}

// HandleIndex renders the page holding the shortening form.
func (h *URLHandler) HandleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, http.StatusOK, "index.html", PageData{Header: "Shortify in GO"})
	}
}

// HandlePostShortify accepts a form with a "url" field and answers with JSON as {"shortURL":"<short_url>"}.
func (h *URLHandler) HandlePostShortify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
		defer cancel()
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		URL := r.FormValue("url")
		if URL == "" {
			http.Error(w, "URL is required", http.StatusBadRequest)
			return
		}
		h.log.Debugw("Shortify request detected", "URL", URL)
		id, err := h.processor.Encode(ctx, URL)
		if err != nil {
			h.log.Infow("HandlePostShortify", "error", err)
			var inputErr *serviceErrors.ServiceIncorrectInputURL
			var timeoutErr *storageErrors.ContextTimeoutExceededError
			switch {
			case errors.As(err, &inputErr):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.As(err, &timeoutErr):
				w.WriteHeader(http.StatusGatewayTimeout)
			default:
				http.Error(w, "Storage error", http.StatusInternalServerError)
			}
			return
		}
		shortURL := h.shortURL(r, id)
		h.log.Infow("HandlePostShortify: stored", "URL", URL, "shortURL", shortURL)
		resBody, err := json.Marshal(modeldto.ResponseShortURL{ShortURL: shortURL})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(resBody)
	}
}

// HandleGetURL provides client with a redirect to the original URL accessed by shortened URL.
func (h *URLHandler) HandleGetURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
		defer cancel()
		sURL := chi.URLParam(r, "urlID")
		URL, err := h.processor.Decode(ctx, sURL)
		if err != nil {
			h.log.Infow("HandleGetURL", "sURL", sURL, "error", err)
			var notFoundErr *storageErrors.NotFoundError
			var timeoutErr *storageErrors.ContextTimeoutExceededError
			switch {
			case errors.As(err, &notFoundErr):
				h.render(w, http.StatusNotFound, "404.html", PageData{Header: "Page cannot be found"})
			case errors.As(err, &timeoutErr):
				w.WriteHeader(http.StatusGatewayTimeout)
			default:
				http.Error(w, "Storage error", http.StatusInternalServerError)
			}
			return
		}
		h.log.Debugw("HandleGetURL: retrieved URL", "sURL", sURL, "URL", URL)
		http.Redirect(w, r, URL, http.StatusFound)
	}
}

// HandleAdmin lists every stored link.
func (h *URLHandler) HandleAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
		defer cancel()
		URLs, err := h.processor.List(ctx)
		if err != nil {
			h.log.Errorw("HandleAdmin", "error", err)
			http.Error(w, "Storage error", http.StatusInternalServerError)
			return
		}
		links := make([]adminLink, 0, len(URLs))
		for _, u := range URLs {
			links = append(links, adminLink{
				ID:    u.ID,
				URL:   u.URL,
				Short: h.shortURL(r, u.SURL),
				Date:  u.CreatedAt.Format(dateLayout),
			})
		}
		h.render(w, http.StatusOK, "admin.html", struct{ Links []adminLink }{Links: links})
	}
}

// HandleAdminDelete removes the link whose ID is sent as the "id" form field.
func (h *URLHandler) HandleAdminDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), opTimeout)
		defer cancel()
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		idStr := r.FormValue("id")
		if idStr == "" {
			http.Error(w, "Missing id", http.StatusBadRequest)
			return
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid id", http.StatusBadRequest)
			return
		}
		if err := h.processor.Delete(ctx, id); err != nil {
			h.log.Infow("HandleAdminDelete", "id", id, "error", err)
			var notFoundErr *storageErrors.IDNotFoundError
			if errors.As(err, &notFoundErr) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "Database deletion error", http.StatusInternalServerError)
			return
		}
		h.log.Infow("HandleAdminDelete: deleted", "id", id)
		http.Redirect(w, r, "/admin", http.StatusFound)
	}
}

// HandlePingDB reports storage availability.
func (h *URLHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.processor.PingDB(); err != nil {
			h.log.Errorw("HandlePingDB", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (h *URLHandler) shortURL(r *http.Request, id string) string {
	if h.baseURL != "" {
		return h.baseURL + "/" + id
	}
	return "http://" + r.Host + "/" + id
}

func (h *URLHandler) render(w http.ResponseWriter, code int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Errorw("Template rendering failed", "template", name, "error", err)
	}
}
