package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// shutdownTimeout bounds the time given to open requests on shutdown
const shutdownTimeout = 5 * time.Second

// NewRouter registers the API routes behind the rate limiter
func NewRouter(cfg Config) *mux.Router {
	router := mux.NewRouter()
	h := &Handler{}
	limiter := NewIPRateLimiter(cfg.Rate, cfg.Burst)

	// Root router middleware keeps 405 for method mismatches under /api
	router.Use(logRequests, limiter.LimitMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", h.Health).Methods("GET")
	api.HandleFunc("/gross", h.Gross).Methods("POST")
	api.HandleFunc("/effective", h.Effective).Methods("POST")
	api.HandleFunc("/effective/{mode}", h.EffectiveMode).Methods("POST")
	api.HandleFunc("/report/pdf", h.ReportPDF).Methods("POST")
	api.HandleFunc("/report/xlsx", h.ReportXLSX).Methods("POST")

	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, cfg Config) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
