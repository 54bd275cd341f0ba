// Package httpserver — служебный HTTP: /healthz и /metrics.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	pingTimeout     = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Pinger — проверка хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server отдаёт health-check и метрики Prometheus.
type Server struct {
	srv *http.Server
}

// New создаёт сервер на addr.
func New(addr string, store Pinger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(store),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter собирает маршруты.
func NewRouter(store Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthHandler(store))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func healthHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		resp, code := healthResponse{Status: "ok"}, http.StatusOK
		if err := store.Ping(ctx); err != nil {
			log.WithError(err).Warn("Health-check: хранилище недоступно")
			resp, code = healthResponse{Status: "unavailable", Error: err.Error()}, http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// Run слушает до отмены ctx, затем мягко останавливается.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", s.srv.Addr).Info("HTTP-сервер запущен")
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("HTTP-сервер остановлен")
	return nil
}
