package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	proofdoc "github.com/wlproof/proofdoc"
)

// downloadFilename is the suggested attachment name for rendered PDFs.
const downloadFilename = "client-preview.pdf"

// maxBodyBytes bounds request bodies. Pre-composed documents carry
// base64-inlined images, so the limit is generous.
const maxBodyBytes = 32 << 20

type server struct {
	renderer *proofdoc.Renderer
	log      zerolog.Logger
}

func newServer(renderer *proofdoc.Renderer, log zerolog.Logger) *server {
	return &server{renderer: renderer, log: log}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Post("/render/html", s.handleRenderHTML)
	})
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender runs the full pipeline on a JSON render context and
// responds with the captured PDF as an attachment.
func (s *server) handleRender(w http.ResponseWriter, req *http.Request) {
	var rc proofdoc.RenderContext
	body := http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&rc); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid render context", err))
		return
	}

	start := time.Now()
	result, err := s.renderer.Render(req.Context(), rc)
	if err != nil {
		s.renderFailure(w, err)
		return
	}

	s.log.Info().
		Dur("elapsed", time.Since(start)).
		Int("pdf_bytes", len(result.PDF)).
		Msg("rendered document")
	writePDF(w, result.PDF)
}

// handleRenderHTML prints a caller-composed document. The caller is
// responsible for the earlier pipeline stages.
func (s *server) handleRenderHTML(w http.ResponseWriter, req *http.Request) {
	var payload struct {
		HTML string `json:"html"`
	}
	body := http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&payload); err != nil || payload.HTML == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "HTML content is required"})
		return
	}

	start := time.Now()
	pdf, err := s.renderer.RenderDocument(req.Context(), payload.HTML)
	if err != nil {
		s.renderFailure(w, err)
		return
	}

	s.log.Info().
		Dur("elapsed", time.Since(start)).
		Int("pdf_bytes", len(pdf)).
		Msg("rendered document")
	writePDF(w, pdf)
}

// renderFailure maps pipeline errors to responses. Validation errors
// are the caller's fault; everything else is a print-pipeline failure.
// No PDF bytes are ever written on a failure path.
func (s *server) renderFailure(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, proofdoc.ErrMissingTemplate) ||
		errors.Is(err, proofdoc.ErrTooManyImages) ||
		errors.Is(err, proofdoc.ErrMissingHTML) {
		status = http.StatusBadRequest
	}

	s.log.Error().Err(err).Msg("render failed")
	writeJSON(w, status, errorBody("Failed to generate PDF", err))
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		s.log.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func errorBody(msg string, err error) map[string]string {
	return map[string]string{"error": msg, "details": err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writePDF(w http.ResponseWriter, pdf []byte) {
	w.Header().Set("Content-Disposition", `attachment; filename="`+downloadFilename+`"`)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
