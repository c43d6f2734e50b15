/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dapur-nusantara/resep/pkg/cookbook"
	"github.com/dapur-nusantara/resep/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the book over the HTTP API",
		Description: `Start the HTTP API with the working book loaded. Changes made through the
API stay in memory unless --save is set, which writes the book back to
--book on shutdown.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP port",
				Value:   8080,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "Save the book to --book when the server stops",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}

			s := server.New(
				server.WithName(name),
				server.WithVersion(version),
				server.WithPort(cmd.Int("port")),
				server.WithHandler(cookbook.NewHandler(book, version).Routes()),
			)
			runErr := s.Run(ctx)

			if cmd.Bool("save") {
				// the signal context is done by now
				if err := saveBook(context.WithoutCancel(ctx), cmd, book); err != nil {
					return err
				}
				slog.Info("book saved", "location", cmd.String("book"), "recipes", book.Len())
			}
			return runErr
		},
	}
}
