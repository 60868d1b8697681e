// Package server is the composition root: it opens the database, wires
// repositories into services into handlers, and owns the router and
// the server lifecycle. Nothing else in the codebase knows the full
// dependency graph.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Apollo297/newsnote/internal/auth"
	"github.com/Apollo297/newsnote/internal/config"
	"github.com/Apollo297/newsnote/internal/handler"
	"github.com/Apollo297/newsnote/internal/middleware"
	sqliteRepo "github.com/Apollo297/newsnote/internal/repository/sqlite"
	"github.com/Apollo297/newsnote/internal/service"
)

// Server holds the router and the resources it must release on
// shutdown.
type Server struct {
	router *chi.Mux
	cfg    *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New assembles the whole application. The layering is strict: each
// layer receives only the one below it.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	newsSvc := service.NewNewsService(db.News, db.Comments, cfg.NewsPerPage, logger)
	commentSvc := service.NewCommentService(db.Comments, db.News, logger)
	noteSvc := service.NewNoteService(db.Notes, logger)
	authSvc := service.NewAuthService(db.Users, auth.NewPasswordService(), logger)

	if err := newsSvc.SeedDemo(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding news: %w", err)
	}

	newsHandler := handler.NewNewsHandler(newsSvc, authSvc, logger)
	commentHandler := handler.NewCommentHandler(commentSvc, newsSvc, authSvc, logger)
	noteHandler := handler.NewNoteHandler(noteSvc, authSvc, logger)
	authHandler := handler.NewAuthHandler(authSvc, tokens, logger)

	s.setupRoutes(tokens, newsHandler, commentHandler, noteHandler, authHandler)
	return s, nil
}

// setupRoutes binds middleware and routes.
//
// The split mirrors the access model: public pages get OptionalLogin
// (the session, if any, only changes what is rendered), write paths
// and the notes area get RequireLogin (anonymous visitors are sent to
// the login page with a next parameter).
func (s *Server) setupRoutes(tokens *auth.TokenService, news *handler.NewsHandler, comments *handler.CommentHandler, notes *handler.NoteHandler, authH *handler.AuthHandler) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	// public pages
	s.router.Group(func(r chi.Router) {
		r.Use(auth.OptionalLogin(tokens))

		r.Get("/", news.HandleHome)
		r.Get("/news/{id}", news.HandleDetail)

		r.Get(auth.LoginPath, authH.HandleLoginForm)
		r.Post(auth.LoginPath, authH.HandleLogin)
		r.Get("/auth/signup", authH.HandleSignupForm)
		r.Post("/auth/signup", authH.HandleSignup)
		r.Get("/auth/logout", authH.HandleLogout)
		r.Post("/auth/logout", authH.HandleLogout)
	})

	// comment write paths
	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireLogin(tokens))

		r.Post("/news/{id}/comments", comments.HandleCreate)
		r.Get("/comments/{id}/edit", comments.HandleEditForm)
		r.Post("/comments/{id}/edit", comments.HandleEdit)
		r.Get("/comments/{id}/delete", comments.HandleDeleteForm)
		r.Post("/comments/{id}/delete", comments.HandleDelete)
	})

	// the notes landing page is public; everything below it is private
	s.router.Route("/notes", func(r chi.Router) {
		r.With(auth.OptionalLogin(tokens)).Get("/", notes.HandleLanding)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireLogin(tokens))

			r.Get("/list", notes.HandleList)
			r.Get("/add", notes.HandleAddForm)
			r.Post("/add", notes.HandleAdd)
			r.Get("/success", notes.HandleSuccess)
			r.Get("/{slug}", notes.HandleDetail)
			r.Get("/{slug}/edit", notes.HandleEditForm)
			r.Post("/{slug}/edit", notes.HandleEdit)
			r.Get("/{slug}/delete", notes.HandleDeleteForm)
			r.Post("/{slug}/delete", notes.HandleDelete)
			r.Delete("/{slug}/delete", notes.HandleDelete)
		})
	})
}

// Router exposes the assembled handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the server until SIGINT/SIGTERM, then drains in-flight
// requests and closes the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.cfg.Port),
			slog.String("database", s.cfg.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
