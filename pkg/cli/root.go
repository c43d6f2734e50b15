/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/dapur-nusantara/resep/pkg/defaults"
	"github.com/dapur-nusantara/resep/pkg/logging"
)

const (
	name           = "resep"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func bookFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "book",
		Aliases: []string{"b"},
		Usage: `Working recipe book, loaded before and saved after every change.
	Supports: file paths, HTTP/HTTPS URLs (read-only), ConfigMap URIs (cm://namespace/name)
	or OCI registry references (oci://registry/repository:tag).`,
		Value:   defaults.BookPath,
		Sources: cli.EnvVars("RESEP_BOOK"),
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "Path to the kubeconfig used for cm:// locations. Default: in-cluster, then ~/.kube/config",
		Sources: cli.EnvVars("KUBECONFIG"),
	}
}

func httpTimeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:  "http-timeout",
		Usage: "Total timeout for reading http(s) locations",
		Value: defaults.HTTPClientTimeout,
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   "warn",
		Sources: cli.EnvVars(logging.EnvLogLevel),
	}
}

// Execute runs the resep command tree and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                      name,
		Usage:                     "resep - recipe book manager",
		Version:                   fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion:     true,
		DisableSliceFlagSeparator: true,
		Description: fmt.Sprintf(`Keep a book of up to %d recipes with ingredients, steps and cooking time.

Recipes are addressed by the number shown in "resep list". The book is read
from --book when a command starts and written back after add, update,
remove, clear, import and "sort --by duration".`, defaults.MaxRecipes),
		Flags: []cli.Flag{
			bookFlag(),
			kubeconfigFlag(),
			httpTimeoutFlag(),
			logLevelFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			addCmd(),
			updateCmd(),
			removeCmd(),
			clearCmd(),
			listCmd(),
			showCmd(),
			searchCmd(),
			suggestCmd(),
			filterCmd(),
			sortCmd(),
			importCmd(),
			exportCmd(),
			serveCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so overrides like
// --log-level take effect before any command executes.
func initLogger(level string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
}
