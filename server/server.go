// Package server assembles the HTTP server around the store and the
// external integrations.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/agendapilot/agendapilot/internal/profile"
	"github.com/agendapilot/agendapilot/plugin/ai"
	"github.com/agendapilot/agendapilot/plugin/chat"
	"github.com/agendapilot/agendapilot/plugin/docsource"
	apiv1 "github.com/agendapilot/agendapilot/server/router/api/v1"
	"github.com/agendapilot/agendapilot/store"
)

type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
}

// NewServer builds the Echo instance and mounts the v1 API. The document
// source, chat client and generator are injected; chatClient may be nil.
func NewServer(profile *profile.Profile, store *store.Store, source docsource.Source, chatClient chat.Client, generator ai.Generator) *Server {
	echoServer := echo.New()
	echoServer.Debug = true
	echoServer.HideBanner = true
	echoServer.HidePort = true

	echoServer.Use(echomw.Recover())
	echoServer.Use(echomw.CORS())
	echoServer.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(_ echo.Context, v echomw.RequestLoggerValues) error {
			slog.Info("http request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status))
			return nil
		},
	}))

	echoServer.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})

	apiService := apiv1.NewAPIV1Service(profile, store, source, chatClient, generator)
	apiService.RegisterRoutes(echoServer)

	return &Server{
		Profile:    profile,
		Store:      store,
		echoServer: echoServer,
	}
}

// Start begins serving. It returns once the listener is bound or fails.
func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-time.After(100 * time.Millisecond):
		slog.Info("server started", slog.String("address", address), slog.String("version", s.Profile.Version))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown drains in-flight requests and closes the store.
func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
	}
	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close store", slog.String("error", err.Error()))
	}
	slog.Info("server shutdown")
}
