package spectate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Handler returns the viewer HTTP routes:
//
//	/ws        websocket frame stream
//	/snapshot  latest frame as JSON
func Handler(h *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	mux.HandleFunc("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		latest := h.Latest()
		if latest == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(latest)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "viewers: %d\nstream: ws://%s/ws\nlatest: http://%s/snapshot\n", h.Clients(), r.Host, r.Host)
	})
	return mux
}

// Server serves a hub over HTTP.
type Server struct {
	hub  *Hub
	http *http.Server
	ln   net.Listener
}

// Listen binds addr and prepares the viewer server.
func Listen(addr string, h *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectate: cannot listen on %s: %w", addr, err)
	}
	return &Server{
		hub: h,
		ln:  ln,
		http: &http.Server{
			Handler:           Handler(h),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve runs the hub and the HTTP server until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	go s.hub.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(s.ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: %w", err)
	}
}
