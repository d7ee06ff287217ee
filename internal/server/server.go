package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/recruit-ai/internal/analysis"
	"github.com/jonathan/recruit-ai/internal/config"
	"github.com/jonathan/recruit-ai/internal/dashboard"
	"github.com/jonathan/recruit-ai/internal/db"
	"github.com/jonathan/recruit-ai/internal/email"
	"github.com/jonathan/recruit-ai/internal/server/middleware"
	"github.com/jonathan/recruit-ai/internal/types"
)

// DashboardService is the dashboard surface the HTTP handlers depend on
type DashboardService interface {
	Candidates(ctx context.Context, userID uuid.UUID) ([]types.Candidate, error)
	Analyze(ctx context.Context, userID uuid.UUID, req dashboard.AnalyzeRequest) (*dashboard.AnalyzeOutcome, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, candidateID, status string) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, candidateID string) error
	SendEmail(ctx context.Context, userID uuid.UUID, candidateID string) (email.Type, error)
	Jobs(ctx context.Context) ([]types.Job, error)
	Metrics(ctx context.Context, userID uuid.UUID) (*types.DashboardMetrics, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	svc         DashboardService
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	validator   *validator.Validate
	logger      *zap.Logger
}

// New creates a new server instance
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:        database,
		validator: validator.New(),
		logger:    logger,
	}

	// Authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig, logger)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService, s.logger)

	// Dashboard service and its webhook clients
	analyzer := analysis.NewClient(cfg.AnalysisWebhookURL, cfg.WebhookTimeout, logger)
	emails := email.NewClient(cfg.EmailWebhookURL, cfg.WebhookTimeout, logger)
	s.svc = dashboard.NewService(database, analyzer, emails, logger)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for analysis runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router with middleware applied
func (s *Server) routes() http.Handler {
	authed := middleware.Auth(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /auth/password-reset", s.authHandler.PasswordReset)
	mux.Handle("PUT /auth/password", authed(http.HandlerFunc(s.authHandler.UpdatePassword)))

	// Candidates
	mux.Handle("GET /candidates", authed(http.HandlerFunc(s.handleListCandidates)))
	mux.Handle("POST /candidates/analyze", authed(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("PATCH /candidates/{id}/status", authed(http.HandlerFunc(s.handleUpdateStatus)))
	mux.Handle("DELETE /candidates/{id}", authed(http.HandlerFunc(s.handleDeleteCandidate)))
	mux.Handle("POST /candidates/{id}/email", authed(http.HandlerFunc(s.handleSendEmail)))

	// Jobs and metrics
	mux.Handle("GET /jobs", authed(http.HandlerFunc(s.handleListJobs)))
	mux.Handle("GET /metrics", authed(http.HandlerFunc(s.handleMetrics)))

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}
