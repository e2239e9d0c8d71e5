package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/section-kit/internal/sections"
	"github.com/eugenenazirov/section-kit/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const maxBodyBytes = 1 << 20

// Handler wires the section registry and override storage into HTTP handlers.
type Handler struct {
	registry *sections.Registry
	storage  storage.Storage
	logger   *zap.Logger

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithLogger sets the logger used for failures after the response started.
func WithLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(registry *sections.Registry, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		registry: registry,
		storage:  store,
		logger:   zap.NewNop(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListSections(w http.ResponseWriter, r *http.Request) {
	_ = r
	names := h.registry.Names()
	resp := sectionsResponse{Sections: make([]sectionSummary, 0, len(names))}
	for _, name := range names {
		section, err := h.registry.Lookup(name)
		if err != nil {
			writeInternalError(w, err)
			return
		}
		resp.Sections = append(resp.Sections, sectionSummary{Name: name, Fields: section.Keys()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetDefaults(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, defaultsResponse{
		Section: section.Name(),
		Config:  section.DefaultValues(),
	})
}

func (h *Handler) handleGetOverride(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}
	entry, err := h.storage.GetOverride(section.Name())
	if err != nil {
		writeSectionError(w, err)
		return
	}
	writeOverride(w, section.Name(), entry, "")
}

func (h *Handler) handlePutOverride(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}

	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}
	if _, err := section.Resolve(doc); err != nil {
		writeSectionError(w, err)
		return
	}

	entry, err := h.storage.SetOverride(section.Name(), doc, ifMatch(r))
	if err != nil {
		writeSectionError(w, err)
		return
	}
	writeOverride(w, section.Name(), entry, "Override saved")
}

func (h *Handler) handleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}
	entry, err := h.storage.ResetOverride(section.Name())
	if err != nil {
		writeSectionError(w, err)
		return
	}
	writeOverride(w, section.Name(), entry, "Override reset to defaults")
}

func (h *Handler) handlePatchField(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req fieldEditRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}
	tag, err := sections.ParseTag(req.Field)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid field", err.Error())
		return
	}

	entry, err := h.storage.GetOverride(section.Name())
	if err != nil {
		writeSectionError(w, err)
		return
	}
	if rev := ifMatch(r); rev != "" && rev != entry.Revision {
		writeSectionError(w, storage.ErrRevisionMismatch)
		return
	}

	doc, err := section.ApplyEdit(entry.Document, tag, req.Value)
	if err != nil {
		writeSectionError(w, err)
		return
	}
	if _, err := section.Resolve(doc); err != nil {
		writeSectionError(w, err)
		return
	}

	saved, err := h.storage.SetOverride(section.Name(), doc, entry.Revision)
	if err != nil {
		writeSectionError(w, err)
		return
	}
	writeOverride(w, section.Name(), saved, "Field updated")
}

func (h *Handler) handleGetResolved(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}
	entry, err := h.storage.GetOverride(section.Name())
	if err != nil {
		writeSectionError(w, err)
		return
	}
	res, err := section.Resolve(entry.Document)
	if err != nil {
		writeSectionError(w, err)
		return
	}
	w.Header().Set("ETag", quoteETag(entry.Revision))
	writeJSON(w, http.StatusOK, resolvedResponse{Resolution: res, Revision: entry.Revision})
}

func (h *Handler) handlePostResolved(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}
	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}
	res, err := section.Resolve(doc)
	if err != nil {
		writeSectionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolvedResponse{Resolution: res})
}

func (h *Handler) handleGetRender(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}
	entry, err := h.storage.GetOverride(section.Name())
	if err != nil {
		writeSectionError(w, err)
		return
	}
	res, err := section.Resolve(entry.Document)
	if err != nil {
		writeSectionError(w, err)
		return
	}
	w.Header().Set("ETag", quoteETag(entry.Revision))
	h.writeHTML(w, r, res)
}

func (h *Handler) handlePostRender(w http.ResponseWriter, r *http.Request) {
	section, ok := h.lookup(w, r)
	if !ok {
		return
	}
	doc, ok := decodeDocument(w, r)
	if !ok {
		return
	}
	res, err := section.Resolve(doc)
	if err != nil {
		writeSectionError(w, err)
		return
	}
	h.writeHTML(w, r, res)
}

func (h *Handler) writeHTML(w http.ResponseWriter, r *http.Request, res *sections.Resolution) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := res.Render(w); err != nil {
		h.logger.Error("render section failed",
			zap.String("section", res.Section),
			zap.String("request_id", requestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (sections.Section, bool) {
	section, err := h.registry.Lookup(r.PathValue("section"))
	if err != nil {
		writeSectionError(w, err)
		return nil, false
	}
	return section, true
}

func decodeDocument(w http.ResponseWriter, r *http.Request) (sections.Document, bool) {
	var doc sections.Document
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return nil, false
	}
	if doc == nil {
		doc = sections.Document{}
	}
	return doc, true
}

func ifMatch(r *http.Request) string {
	return strings.Trim(strings.TrimSpace(r.Header.Get("If-Match")), `"`)
}

func quoteETag(revision string) string {
	return `"` + revision + `"`
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type fieldEditRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type sectionSummary struct {
	Name   string              `json:"name"`
	Fields []sections.FieldKey `json:"fields"`
}

type sectionsResponse struct {
	Sections []sectionSummary `json:"sections"`
}

type defaultsResponse struct {
	Section string                    `json:"section"`
	Config  map[sections.FieldKey]any `json:"config"`
}

type overrideResponse struct {
	Section   string            `json:"section"`
	Override  sections.Document `json:"override"`
	Revision  string            `json:"revision"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Message   string            `json:"message,omitempty"`
}

type resolvedResponse struct {
	*sections.Resolution
	Revision string `json:"revision,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Field      string `json:"field,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeOverride(w http.ResponseWriter, section string, entry storage.Entry, message string) {
	w.Header().Set("ETag", quoteETag(entry.Revision))
	writeJSON(w, http.StatusOK, overrideResponse{
		Section:   section,
		Override:  entry.Document,
		Revision:  entry.Revision,
		UpdatedAt: entry.UpdatedAt,
		Message:   message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeSectionError(w http.ResponseWriter, err error) {
	var validationErr *sections.ConfigValidationError
	switch {
	case errors.As(err, &validationErr):
		resp := errorResponse{
			Error:   "Invalid override",
			Details: err.Error(),
			Field:   validationErr.Field,
		}
		if errors.Is(err, sections.ErrUnknownField) {
			resp.Suggestion = "GET /api/sections lists the fields of every section"
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, sections.ErrUnknownSection), errors.Is(err, storage.ErrUnknownSection):
		writeError(w, http.StatusNotFound, "Unknown section", err.Error())
	case errors.Is(err, storage.ErrRevisionMismatch):
		writeError(w, http.StatusPreconditionFailed, "Revision mismatch", err.Error(), "reload the override and retry the edit")
	default:
		writeInternalError(w, err)
	}
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
