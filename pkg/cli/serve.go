/*
Copyright © 2026 Plateforge Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/plateforge/plateforge/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the validation HTTP API",
		Description: `Run the validation HTTP API until interrupted. Configuration comes
from environment variables (PORT, RATE_LIMIT, CORS_ORIGINS, LOG_LEVEL).`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx)
		},
	}
}
