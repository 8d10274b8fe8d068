package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/experiment"
	"github.com/san-kum/orbsim/internal/metrics"
	"github.com/san-kum/orbsim/internal/sim"
	"github.com/san-kum/orbsim/internal/stream"
)

// latestFrame keeps the most recent snapshot for /state.
type latestFrame struct {
	mu    sync.RWMutex
	frame sim.Frame
}

func (l *latestFrame) OnStep(s *sim.System) {
	f := s.Snapshot()
	l.mu.Lock()
	l.frame = f
	l.mu.Unlock()
}

func (l *latestFrame) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l.mu.RLock()
	f := l.frame
	l.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f); err != nil {
		log.Printf("state: %v", err)
	}
}

// runServe steps the system until interrupted. Frames go to websocket
// clients on /ws and the collector is scraped on /metrics.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !(fps > 0) {
		return fmt.Errorf("%w: fps must be positive", dynamo.ErrParameterBounds)
	}

	exp, err := experiment.Build(cfg)
	if err != nil {
		return err
	}
	sys := exp.System()

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	collector.Attach(sys)

	hub := stream.NewHub(fps)
	defer hub.Close()
	sys.AddObserver(hub)

	state := &latestFrame{frame: sys.Snapshot()}
	sys.AddObserver(state)

	sys.AddOrbitSink(sim.OrbitFunc(func(name string, avgPeriod float64) {
		log.Printf("Orbital Period of %s: %v", name, avgPeriod)
	}))

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	mux.Handle("/ws", hub)
	mux.Handle("/state", state)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signalContext()
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("serving %s on http://%s (/ws, /metrics, /state)", cfg.Name, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// one step per frame
	ticker := time.NewTicker(time.Duration(float64(time.Second) / fps))
	defer ticker.Stop()

	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case err, ok := <-serveErr:
			if ok {
				runErr = err
			}
			break loop
		case <-ticker.C:
			if err := sys.Step(); err != nil {
				runErr = err
				break loop
			}
		}
	}

	log.Printf("stopping after %d steps", sys.Steps())
	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	return runErr
}
