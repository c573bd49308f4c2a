package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"electoral/internal/config"
)

// Server servidor HTTP del servicio electoral
type Server struct {
	container  *Container
	httpServer *http.Server
}

// New crea el servidor: carga dependencias y arma el router
func New(cfg *config.Config) (*Server, error) {
	logger := NewLogger(cfg.LogLevel)

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, err
	}

	router := NewRouter(container)

	return &Server{
		container: container,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 2 * time.Minute, // el cálculo nacional y el export pueden tardar
			IdleTimeout:  120 * time.Second,
		},
	}, nil
}

// Start levanta el servidor y bloquea hasta que se apague
func (s *Server) Start() error {
	s.container.Logger.Info("servidor escuchando",
		"addr", s.httpServer.Addr,
		"version", Version,
		"distritos", len(s.container.Datos.Escanos),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("error del servidor HTTP: %w", err)
	}

	return nil
}

// Shutdown apaga el servidor con gracia y libera los recursos
func (s *Server) Shutdown(ctx context.Context) error {
	s.container.Logger.Info("apagando el servidor")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("error apagando el servidor: %w", err)
	}

	return s.container.Close()
}
