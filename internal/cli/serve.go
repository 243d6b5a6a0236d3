package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/fpl"
	fplio "github.com/matzehuels/fpl/pkg/io"
)

const (
	defaultAddr     = "localhost:8080"
	shutdownTimeout = 5 * time.Second

	// headerRequestID carries the request ID in both directions.
	headerRequestID = "X-Request-Id"
)

type requestIDKey struct{}

// serveCommand answers render requests over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve diagrams over HTTP",
		Long: `Serve diagrams over HTTP. Every endpoint takes the matrix literal in the
"m" query parameter and optionally "orientation" (even, odd).

  GET /render.svg?m=...&type=loops|link
  GET /render.txt?m=...
  GET /render.json?m=...
  GET /link?m=...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(logger, c.config),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("Listening on http://%s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// newRouter builds the HTTP routes. SVG styling comes from cfg.
func newRouter(logger *log.Logger, cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	h := handler{config: cfg}
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})
	r.Get("/render.svg", h.render(formatSVG, "image/svg+xml"))
	r.Get("/render.txt", h.render(formatText, "text/plain; charset=utf-8"))
	r.Get("/render.json", h.render(formatJSON, "application/json"))
	r.Get("/link", h.link)
	return r
}

// requestID tags each request with a UUID unless the client sent one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// requestLogger logs one line per request.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			id, _ := r.Context().Value(requestIDKey{}).(string)
			logger.Info(r.Method+" "+r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start).Round(time.Microsecond),
				"id", id)
		})
	}
}

type handler struct {
	config Config
}

// grid builds the grid named by the request's query.
func (h handler) grid(r *http.Request) (*fpl.Grid, error) {
	q := r.URL.Query()
	literal := q.Get("m")
	if literal == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, `missing query parameter "m"`)
	}
	doc, err := fplio.ReadText(strings.NewReader(literal))
	if err != nil {
		return nil, err
	}
	orientation := q.Get("orientation")
	if orientation == "" {
		orientation = h.config.Orientation
	}
	return doc.Grid(orientation)
}

func (h handler) render(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := h.grid(r)
		if err != nil {
			writeError(w, err)
			return
		}
		vizType := r.URL.Query().Get("type")
		if vizType == "" {
			vizType = typeLoops
		}
		if err := validateVizTypes([]string{vizType}); err != nil {
			writeError(w, err)
			return
		}

		opts := newRenderOpts(h.config)
		data, err := renderGrid(g, vizType, format, &opts)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}

// linkResponse is the body of GET /link.
type linkResponse struct {
	Size        int              `json:"size"`
	Orientation string           `json:"orientation"`
	LinkPattern *fpl.LinkPattern `json:"link_pattern"`
	Text        string           `json:"text"`
	Points      []linkPoint      `json:"points"`
}

type linkPoint struct {
	Label int    `json:"label"`
	Side  string `json:"side"`
	Index int    `json:"index"`
}

func (h handler) link(w http.ResponseWriter, r *http.Request) {
	g, err := h.grid(r)
	if err != nil {
		writeError(w, err)
		return
	}
	lp, err := fpl.ExtractLinkPattern(g)
	if err != nil {
		writeError(w, err)
		return
	}
	var points []linkPoint
	for _, p := range fpl.BoundaryPoints(g) {
		points = append(points, linkPoint{Label: p.Label, Side: p.Side.String(), Index: p.Index})
	}
	writeJSON(w, http.StatusOK, linkResponse{
		Size:        g.Size(),
		Orientation: g.Orientation().String(),
		LinkPattern: lp,
		Text:        lp.String(),
		Points:      points,
	})
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorResponse{Code: string(code), Error: errors.UserMessage(err)})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidMatrix,
		errors.ErrCodeInvalidConfiguration, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidGenerator:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
