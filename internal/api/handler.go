package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rabbitcabbage/blogconfig/internal/siteconfig"
	"github.com/rabbitcabbage/blogconfig/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler serves the resolved site configuration from storage.
type Handler struct {
	storage storage.Storage

	clock    func() time.Time
	loadedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.loadedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, _ *http.Request) {
	cfg, ok := h.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, configResponse{
		Config:   cfg,
		LoadedAt: h.loadedAt,
	})
}

func (h *Handler) handleGetSite(w http.ResponseWriter, _ *http.Request) {
	cfg, ok := h.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cfg.Site)
}

func (h *Handler) handleGetSocialLinks(w http.ResponseWriter, _ *http.Request) {
	cfg, ok := h.load(w)
	if !ok {
		return
	}
	links := cfg.Site.SocialLinks
	if links == nil {
		links = []siteconfig.SocialLink{}
	}
	writeJSON(w, http.StatusOK, socialLinksResponse{SocialLinks: links})
}

func (h *Handler) handleGetSeo(w http.ResponseWriter, _ *http.Request) {
	cfg, ok := h.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cfg.Seo)
}

func (h *Handler) load(w http.ResponseWriter) (siteconfig.Config, bool) {
	cfg, err := h.storage.Get()
	if err != nil {
		writeInternalError(w, err)
		return siteconfig.Config{}, false
	}
	return cfg, true
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type configResponse struct {
	siteconfig.Config
	LoadedAt time.Time `json:"loadedAt"`
}

type socialLinksResponse struct {
	SocialLinks []siteconfig.SocialLink `json:"socialLinks"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if status != 0 {
		w.WriteHeader(status)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
