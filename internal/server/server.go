package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/alexanderramin/astroplan/internal/horoscope"
)

// Server exposes the horoscope generation API over HTTP.
type Server struct {
	horoscopes horoscope.Service
	logger     *log.Logger
}

// NewServer creates a Server. A nil logger disables request logging.
func NewServer(horoscopes horoscope.Service, logger *log.Logger) *Server {
	return &Server{horoscopes: horoscopes, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/horoscope", s.handleHoroscope)
	mux.HandleFunc("/healthz", s.handleHealth)
	return s.logRequests(mux)
}

// ListenAndServe runs the server until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// horoscopeRequest is the JSON body accepted by POST /api/horoscope.
type horoscopeRequest struct {
	ZodiacSign         string `json:"zodiacSign"`
	Name               string `json:"name"`
	Date               string `json:"date"`
	PlanetaryInfluence string `json:"planetaryInfluence"`
}

func (s *Server) handleHoroscope(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req horoscopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ZodiacSign == "" || req.Name == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "zodiacSign, name and date are required")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	reading, err := s.horoscopes.Generate(r.Context(), horoscope.Request{
		Sign:               req.ZodiacSign,
		Name:               req.Name,
		Date:               date,
		PlanetaryInfluence: req.PlanetaryInfluence,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[generate horoscope error]: %v", err)
		}
		writeError(w, http.StatusInternalServerError, "Failed to generate horoscope")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": reading.Text})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.logger != nil {
			s.logger.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
		}
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
