package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/plateforge/plateforge/pkg/logging"
	"github.com/plateforge/plateforge/pkg/report"
	"github.com/plateforge/plateforge/pkg/server"
	"github.com/plateforge/plateforge/pkg/template"
)

const (
	name           = "plateforge-api"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/plateforge/plateforge/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve(ctx context.Context) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	aggregator := report.New(report.WithVersion(version))

	templates, err := template.NewStore()
	if err != nil {
		slog.Error("failed to load template store", "error", err)
		return err
	}

	r := map[string]http.HandlerFunc{
		"/v1/validate":  aggregator.HandleValidate,
		"/v1/score":     aggregator.HandleScore,
		"/v1/templates": templates.HandleTemplates,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
