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

	"github.com/dapur-nusantara/resep/pkg/cookbook"
	"github.com/dapur-nusantara/resep/pkg/recipe"
	"github.com/dapur-nusantara/resep/pkg/serializer"
)

const (
	byTitle      = "title"
	byIngredient = "ingredient"
	byDuration   = "duration"
)

// writeListing renders the recipes of view. Items are numbered by book
// order so the numbers shown are the ones update, show and remove accept.
func writeListing(ctx context.Context, cmd *cli.Command, book *cookbook.Cookbook, view recipe.View, hint *recipe.Suggestion) error {
	l := cookbook.NewListing(book.Entries(view), docOpts(cmd)...)
	for i := range l.Items {
		l.Items[i].Position = l.Items[i].Index + 1
	}
	l.Suggestion = hint
	if err := writeDocument(ctx, cmd, l); err != nil {
		return err
	}
	if hint != nil {
		fmt.Fprintf(stderr(cmd), "No match. Did you mean %q (recipe %d)?\n", hint.Title, hint.Index+1)
	}
	return nil
}

func queryArg(cmd *cli.Command) (string, error) {
	q := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if q == "" {
		return "", fmt.Errorf("a search query is required")
	}
	return q, nil
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List every recipe in book order",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			return writeListing(ctx, cmd, book, book.ListAll(), nil)
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one recipe with all ingredients and steps",
		ArgsUsage: "<no>",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pos, err := singlePosition(cmd)
			if err != nil {
				return err
			}
			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			r, err := book.Get(pos - 1)
			if err != nil {
				return err
			}
			return writeDocument(ctx, cmd, cookbook.NewRecipeDocument(pos-1, r, docOpts(cmd)...))
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find recipes by title or ingredient",
		ArgsUsage: "<query>",
		Description: `Case-insensitive substring search. A title search that finds nothing
suggests the closest title.

  resep search soto
  resep search --by ingredient "santan"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "by",
				Value: byTitle,
				Usage: "Field to search (supported values: title, ingredient)",
			},
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			q, err := queryArg(cmd)
			if err != nil {
				return err
			}
			by := cmd.String("by")
			if by != byTitle && by != byIngredient {
				return fmt.Errorf("unknown search field %q, supported values: %s, %s", by, byTitle, byIngredient)
			}

			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			if by == byIngredient {
				return writeListing(ctx, cmd, book, book.SearchByIngredient(q), nil)
			}
			view, hint := book.SearchByTitle(q)
			return writeListing(ctx, cmd, book, view, hint)
		},
	}
}

func suggestCmd() *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Usage:     "Show the stored title closest to a possibly misspelled one",
		ArgsUsage: "<title>",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			q, err := queryArg(cmd)
			if err != nil {
				return err
			}
			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			var hint *recipe.Suggestion
			if s, ok := book.SuggestTitle(q); ok {
				hint = &s
			}
			return writeDocument(ctx, cmd, cookbook.NewSuggestionDocument(q, hint, docOpts(cmd)...))
		},
	}
}

func filterCmd() *cli.Command {
	return &cli.Command{
		Name:  "filter",
		Usage: "List recipes that take at most the given number of minutes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "max",
				Usage:    "Maximum cooking time in whole minutes",
				Required: true,
			},
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			view, err := book.FilterByMaxDuration(cmd.String("max"))
			if err != nil {
				return err
			}
			return writeListing(ctx, cmd, book, view, nil)
		},
	}
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:  "sort",
		Usage: "List recipes ordered by title or cooking time",
		Description: `Sorting by title only changes the listing. Sorting by duration reorders
the book itself, so recipe numbers change and the book is saved.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "by",
				Value: byTitle,
				Usage: "Sort key (supported values: title, duration)",
			},
			&cli.BoolFlag{
				Name:  "desc",
				Usage: "Sort in descending order",
			},
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			by := cmd.String("by")
			if by != byTitle && by != byDuration {
				return fmt.Errorf("unknown sort key %q, supported values: %s, %s", by, byTitle, byDuration)
			}
			ascending := !cmd.Bool("desc")

			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			if by == byTitle {
				return writeListing(ctx, cmd, book, book.SortByTitle(ascending), nil)
			}

			view := book.SortByDuration(ascending)
			if err := saveBook(ctx, cmd, book); err != nil {
				return err
			}
			return writeListing(ctx, cmd, book, view, nil)
		},
	}
}
