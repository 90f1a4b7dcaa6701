// Package httpapi is the HTTP/WebSocket façade the Python original served
// through Flask + Flask-SocketIO (original_source/app.py). It follows the
// teacher's plain net/http.ServeMux + JSON-handler shape
// (pdrpinto-astar/examples/vizweb/main.go: handleInit/handleNext) rather
// than a heavier router, generalized from a one-shot pathfinding demo to
// the puzzle session's full route set.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/pdrpinto/npuzzle/internal/config"
	"github.com/pdrpinto/npuzzle/internal/driver"
	"github.com/pdrpinto/npuzzle/internal/obslog"
	"github.com/pdrpinto/npuzzle/internal/sharedstate"
)

// Server wires the puzzle session store, the auto-solve driver and the
// WebSocket hub behind a single http.Handler.
type Server struct {
	store  sharedstate.Store
	driver *driver.Driver
	hub    *Hub
	cfg    config.Config
	log    zerolog.Logger

	mux http.Handler
}

// NewServer builds a ready-to-serve Server. cfg.DefaultMaxExpansions and
// cfg.DefaultBatchSize seed /api/auto_solve requests that omit those
// fields; cfg.StepDelay() is the driver's pause between emitted steps.
func NewServer(store sharedstate.Store, cfg config.Config) *Server {
	hub := NewHub()
	s := &Server{
		store:  store,
		driver: driver.New(store),
		hub:    hub,
		cfg:    cfg,
		log:    obslog.For("httpapi"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/puzzle", s.handleGetPuzzle)
	mux.HandleFunc("POST /api/move", s.handleMove)
	mux.HandleFunc("POST /api/new", s.handleNew)
	mux.HandleFunc("POST /api/set_state", s.handleSetState)
	mux.HandleFunc("POST /api/auto_solve", s.handleAutoSolve)
	mux.HandleFunc("POST /api/stop_auto_solve", s.handleStopAutoSolve)
	mux.HandleFunc("/ws", hub.ServeWS)

	// mirrors the Python original's CORS(app) blanket allow-all, since the
	// façade is meant to be driven from a separately-hosted browser client.
	s.mux = cors.AllowAll().Handler(mux)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run starts the hub's broadcast loop and listens on cfg.ListenAddr until
// ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go s.hub.run(ctx)

	srv := &http.Server{Addr: s.cfg.ListenAddr, Handler: s}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
