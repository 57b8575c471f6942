package server

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/stackuml/pkg/cache"
	"github.com/matzehuels/stackuml/pkg/errors"
	uio "github.com/matzehuels/stackuml/pkg/io"
	"github.com/matzehuels/stackuml/pkg/pipeline"
	"github.com/matzehuels/stackuml/pkg/store"
)

// Response headers set by the render and diagram endpoints.
const (
	HeaderDiagramID       = "X-Diagram-ID"
	HeaderDiagramHash     = "X-Diagram-Hash"
	HeaderDroppedMessages = "X-Dropped-Messages"
	HeaderCache           = "X-Cache"
)

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStats handles GET /api/v1/stats.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

// handleRender handles POST /api/v1/render.
//
// Query parameters: format (default svg), theme, background, marker, scale,
// break_cycles, refresh and save. The body is a JSON description, or TOML
// when Content-Type is application/toml.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	desc, err := s.readDescription(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts, save, err := renderOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	format := opts.Formats[0]

	res, err := s.runner.Execute(r.Context(), desc, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data := res.Artifacts[format]

	if save {
		d := &store.Diagram{
			Name:        desc.Name,
			Kind:        string(res.Diagram.Kind),
			Format:      format,
			ContentType: pipeline.ContentTypes[format],
			Hash:        res.Hash,
			Dropped:     len(res.Dropped),
			Data:        data,
		}
		if err := s.store.Save(r.Context(), d); err != nil {
			s.writeError(w, err)
			return
		}
		w.Header().Set(HeaderDiagramID, d.ID)
	}

	w.Header().Set(HeaderDiagramHash, res.Hash)
	w.Header().Set(HeaderDroppedMessages, strconv.Itoa(len(res.Dropped)))
	w.Header().Set(HeaderCache, cacheStatus(res.CacheHit))
	writeBytes(w, http.StatusOK, pipeline.ContentTypes[format], data)
}

// handleListDiagrams handles GET /api/v1/diagrams?limit=N.
func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}
	list, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if list == nil {
		list = []store.Diagram{}
	}
	writeJSON(w, http.StatusOK, list)
}

// cachedDiagram is the cache entry for a stored diagram's bytes.
type cachedDiagram struct {
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// handleGetDiagram handles GET /api/v1/diagrams/{id}. Reads go through the
// runner's cache before the store.
func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	id, ok := s.diagramID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	key := s.runner.Keyer.DiagramKey(id)

	if raw, hit, err := s.runner.Cache.Get(ctx, key); err == nil && hit {
		var c cachedDiagram
		if json.Unmarshal(raw, &c) == nil {
			w.Header().Set(HeaderCache, cacheStatus(true))
			writeBytes(w, http.StatusOK, c.ContentType, c.Data)
			return
		}
	}

	d, err := s.store.Get(ctx, id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if raw, err := json.Marshal(cachedDiagram{ContentType: d.ContentType, Data: d.Data}); err == nil {
		if err := s.runner.Cache.Set(ctx, key, raw, cache.ArtifactTTL); err != nil {
			s.logger.Debug("cache set failed", "id", id, "error", err)
		}
	}
	w.Header().Set(HeaderCache, cacheStatus(false))
	w.Header().Set(HeaderDroppedMessages, strconv.Itoa(d.Dropped))
	writeBytes(w, http.StatusOK, d.ContentType, d.Data)
}

// handleDeleteDiagram handles DELETE /api/v1/diagrams/{id}.
func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	id, ok := s.diagramID(w, r)
	if !ok {
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.runner.Cache.Delete(r.Context(), s.runner.Keyer.DiagramKey(id)); err != nil {
		s.logger.Warn("cache delete failed", "id", id, "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) diagramID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if !store.ValidID(id) {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid diagram id %q", id))
		return "", false
	}
	return id, true
}

func (s *Server) readDescription(w http.ResponseWriter, r *http.Request) (*uio.Description, error) {
	format := uio.FormatJSON
	if ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
		if ct == "application/toml" || ct == "text/toml" {
			format = uio.FormatTOML
		}
	}
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	defer body.Close()
	return uio.Read(body, format)
}

// renderOptions reads pipeline options from the query string. Only one
// format is rendered per request.
func renderOptions(r *http.Request) (pipeline.Options, bool, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Theme:      q.Get("theme"),
		Background: q.Get("background"),
		Marker:     q.Get("marker"),
	}

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, false, err
	}
	opts.Formats = []string{format}

	if v := q.Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, false, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v)
		}
		opts.Scale = n
	}

	var err error
	if opts.BreakCycles, err = boolParam(q.Get("break_cycles")); err != nil {
		return opts, false, err
	}
	if opts.Refresh, err = boolParam(q.Get("refresh")); err != nil {
		return opts, false, err
	}
	save, err := boolParam(q.Get("save"))
	return opts, save, err
}

func boolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "invalid boolean %q", v)
	}
	return b, nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeBytes(w http.ResponseWriter, status int, contentType string, data []byte) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// writeError maps coded errors to HTTP statuses: NOT_FOUND is 404, caller
// mistakes are 400 and everything else is 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case code == errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.IsClientError(code):
		status = http.StatusBadRequest
	}

	body := errorBody{Code: code, Message: errors.UserMessage(err)}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		body = errorBody{Code: errors.ErrCodeInternal, Message: "internal error"}
	}
	writeJSON(w, status, body)
}
