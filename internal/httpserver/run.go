package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts the HTTP listener. It blocks until the
// listener stops.
func (srv HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("mapping handlers: %w", err)
	}

	srv.l.Infof(ctx, "HTTP server listening on :%d (mode=%s, env=%s)", srv.port, srv.mode, srv.environment)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
