package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/tailoring"
)

// Server is the HTTP API: stateless parse/tailor/render endpoints plus
// optional database-backed resume and job storage.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	parser     *parsing.Parser
	engine     *tailoring.Engine
	validate   *validator.Validate
	jwtService *JWTService
	apiKeys    *config.APIKeyConfig
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
}

// New creates a server. An empty DatabaseURL runs the stateless endpoints
// only; persistence endpoints then answer 503.
func New(ctx context.Context, cfg Config) (*Server, error) {
	tables := keywords.Default()
	s := &Server{
		parser:   parsing.New(tables),
		engine:   tailoring.NewEngine(tables),
		validate: validator.New(),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	apiKeys, err := config.NewAPIKeyConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create API key config: %w", err)
	}
	s.apiKeys = apiKeys

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/token", s.handleToken)

	// Stateless core endpoints
	mux.HandleFunc("POST /parse", s.requireAuth(s.handleParse))
	mux.HandleFunc("POST /tailor", s.requireAuth(s.handleTailor))
	mux.HandleFunc("POST /render", s.requireAuth(s.handleRender))

	// Persistence endpoints
	mux.HandleFunc("POST /resumes", s.requireAuth(s.handleCreateResume))
	mux.HandleFunc("GET /resumes/{id}", s.requireAuth(s.handleGetResume))
	mux.HandleFunc("POST /jobs", s.requireAuth(s.handleCreateJob))
	mux.HandleFunc("GET /jobs", s.requireAuth(s.handleListJobs))
	mux.HandleFunc("POST /resumes/{id}/tailor/{job_id}", s.requireAuth(s.handleTailorStored))
	mux.HandleFunc("GET /resumes/{id}/tailor/{job_id}", s.requireAuth(s.handleGetTailored))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until the context is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// jsonResponse writes a JSON body with a status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
