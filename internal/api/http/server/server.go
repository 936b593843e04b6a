package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Agent-cat/Expence-Tracker/internal/model"
)

var _ model.Server = (*Server)(nil)

// Server serves the fiber application over a listener produced by the
// configured security layer.
type Server struct {
	app  *fiber.App
	addr string
}

// New creates a new Server serving app on addr.
func New(app *fiber.App, addr string) *Server {
	return &Server{
		app:  app,
		addr: addr,
	}
}

// Start opens a listener through the security layer and serves until Stop.
func (s *Server) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	return s.app.Listener(listener)
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.addr
}
