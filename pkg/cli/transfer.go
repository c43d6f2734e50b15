/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dapur-nusantara/resep/pkg/serializer"
)

// stdioLocation selects stdin or stdout instead of a location.
const stdioLocation = "-"

func locationArg(cmd *cli.Command) (string, error) {
	if cmd.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one location, got %d arguments", cmd.NArg())
	}
	uri := strings.TrimSpace(cmd.Args().First())
	if uri == "" {
		return "", fmt.Errorf("location must not be empty")
	}
	return uri, nil
}

func importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Append the recipes of a CSV table to the book",
		ArgsUsage: "<location>",
		Description: `Read a CSV table with the header Judul,Bahan,Langkah,Waktu and append
its recipes. Nothing is added when any row is invalid, a title already
exists, or the book would exceed its capacity.

Supported locations: file paths, HTTP/HTTPS URLs, ConfigMap URIs
(cm://namespace/name), OCI registry references (oci://registry/repo:tag)
and "-" for stdin.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uri, err := locationArg(cmd)
			if err != nil {
				return err
			}

			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}

			var n int
			if uri == stdioLocation {
				records, rerr := serializer.ReadCSV(cmd.Root().Reader)
				if rerr != nil {
					return fmt.Errorf("failed to read table from stdin: %w", rerr)
				}
				n, err = book.ImportRecords(records)
			} else {
				n, err = book.ImportTable(ctx, uri)
			}
			if err != nil {
				return err
			}
			if err := saveBook(ctx, cmd, book); err != nil {
				return err
			}

			fmt.Fprintf(stdout(cmd), "Imported %d recipe(s), the book now holds %d.\n", n, book.Len())
			return nil
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Write the book as a CSV table",
		ArgsUsage: "<location>",
		Description: `Write every recipe, in book order, under the header
Judul,Bahan,Langkah,Waktu. An empty book is not exported.

Supported locations: file paths, ConfigMap URIs (cm://namespace/name),
OCI registry references (oci://registry/repo:tag) and "-" for stdout.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			uri, err := locationArg(cmd)
			if err != nil {
				return err
			}

			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}

			if uri == stdioLocation {
				rows, err := book.ExportRecords()
				if err != nil {
					return err
				}
				return serializer.WriteCSV(stdout(cmd), rows)
			}

			n, err := book.ExportTable(ctx, uri)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout(cmd), "Exported %d recipe(s) to %s.\n", n, uri)
			return nil
		},
	}
}
