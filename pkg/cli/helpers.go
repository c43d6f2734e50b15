/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dapur-nusantara/resep/pkg/cookbook"
	"github.com/dapur-nusantara/resep/pkg/errors"
	"github.com/dapur-nusantara/resep/pkg/header"
	"github.com/dapur-nusantara/resep/pkg/serializer"
)

// Flags are built per command tree; urfave/cli keeps parsed values on the
// flag itself.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output destination: file path or ConfigMap URI (cm://namespace/name). Default: stdout",
	}
}

func formatFlag(value serializer.Format) cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(value),
		Usage:   "Output format (supported values: table, json, yaml)",
	}
}

// parseOutputFormat returns the listing format named by --format. CSV is
// reserved for the interchange table written by export.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() || f == serializer.FormatCSV {
		return "", fmt.Errorf("unknown output format: %q", cmd.String("format"))
	}
	return f, nil
}

// writeDocument renders doc to --output, or to the command writer when no
// output is set.
func writeDocument(ctx context.Context, cmd *cli.Command, doc any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	var ser serializer.Serializer
	if path := cmd.String("output"); strings.TrimSpace(path) != "" {
		ser, err = serializer.NewFileWriterOrStdout(outFormat, path)
		if err != nil {
			return fmt.Errorf("failed to open output %q: %w", path, err)
		}
	} else {
		ser = serializer.NewWriter(outFormat, stdout(cmd))
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, doc)
}

func stdout(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

func stderr(cmd *cli.Command) io.Writer {
	return cmd.Root().ErrWriter
}

func docOpts(cmd *cli.Command) []header.Option {
	return []header.Option{header.WithVersion(version), header.WithBook(cmd.String("book"))}
}

// openBook loads the working book named by --book. A book that does not
// exist yet opens empty.
func openBook(ctx context.Context, cmd *cli.Command) (*cookbook.Cookbook, error) {
	uri := cmd.String("book")
	book := cookbook.New(cookbook.WithTableIO(tableIO(cmd)))
	n, err := book.Load(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open book %s: %w", uri, err)
	}
	slog.Debug("book opened", "location", uri, "recipes", n)
	return book, nil
}

// tableIO builds the location reader and writer from the global flags.
func tableIO(cmd *cli.Command) *serializer.TableIO {
	return serializer.NewTableIO(
		serializer.WithKubeconfig(cmd.String("kubeconfig")),
		serializer.WithHTTPReader(serializer.NewHttpReader(
			serializer.WithTotalTimeout(cmd.Duration("http-timeout")),
			serializer.WithUserAgent(name+"/"+version),
		)),
	)
}

// saveBook writes the working book back to --book.
func saveBook(ctx context.Context, cmd *cli.Command, book *cookbook.Cookbook) error {
	uri := cmd.String("book")
	if err := book.Save(ctx, uri); err != nil {
		return fmt.Errorf("failed to save book %s: %w", uri, err)
	}
	return nil
}

// parsePositions converts 1-based recipe numbers from the command line.
func parsePositions(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one recipe number is required")
	}
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("invalid recipe number %q", a)
		}
		out = append(out, n)
	}
	return out, nil
}

// singlePosition returns the only positional argument as a recipe number.
func singlePosition(cmd *cli.Command) (int, error) {
	if cmd.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one recipe number, got %d arguments", cmd.NArg())
	}
	positions, err := parsePositions(cmd.Args().Slice())
	if err != nil {
		return 0, err
	}
	return positions[0], nil
}

// describe turns an error into the line shown to the user.
func describe(err error) string {
	str := func(key string) string {
		v, _ := errors.ContextValue(err, key)
		return fmt.Sprint(v)
	}

	switch errors.CodeOf(err) {
	case errors.ErrCodeEmptyField:
		return fmt.Sprintf("%s must not be empty", str("field"))
	case errors.ErrCodeInvalidDuration:
		return fmt.Sprintf("cooking time %q is not a whole number of minutes", str("value"))
	case errors.ErrCodeCapacityExceeded:
		return fmt.Sprintf("the book is full (at most %s recipes)", str("capacity"))
	case errors.ErrCodeDuplicateTitle:
		return fmt.Sprintf("a recipe titled %q already exists", str("title"))
	case errors.ErrCodeIndexOutOfRange:
		if _, ok := errors.ContextValue(err, "position"); ok {
			return fmt.Sprintf("there is no recipe number %s", str("position"))
		}
		idx, _ := errors.ContextValue(err, "index")
		if i, ok := idx.(int); ok {
			return fmt.Sprintf("there is no recipe number %d", i+1)
		}
	case errors.ErrCodeSchemaMismatch:
		return "the file is not a recipe table (header must be Judul,Bahan,Langkah,Waktu)"
	case errors.ErrCodeRowShape:
		return fmt.Sprintf("line %s does not have four columns", str("line"))
	case errors.ErrCodeRowValue:
		return fmt.Sprintf("line %s has an empty field or an invalid cooking time", str("line"))
	case errors.ErrCodeEmptyStore:
		return "the book is empty"
	}
	return err.Error()
}
