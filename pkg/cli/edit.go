/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dapur-nusantara/resep/pkg/cookbook"
	"github.com/dapur-nusantara/resep/pkg/serializer"
)

func recipeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "title",
			Usage: "Recipe title, unique ignoring case and spacing",
		},
		&cli.StringSliceFlag{
			Name:    "ingredient",
			Aliases: []string{"i"},
			Usage:   "Ingredient line (can be repeated; lines are numbered on save)",
		},
		&cli.StringSliceFlag{
			Name:    "step",
			Aliases: []string{"s"},
			Usage:   "Step line (can be repeated; lines are numbered on save)",
		},
		&cli.StringFlag{
			Name:    "duration",
			Aliases: []string{"d"},
			Usage:   "Cooking time in whole minutes",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "JSON or YAML file with title, ingredients, steps and duration; flags override its fields",
		},
	}
}

// inputFromCmd overlays --file and the recipe field flags on base.
func inputFromCmd(cmd *cli.Command, base cookbook.RecipeInput) (cookbook.RecipeInput, error) {
	in := base
	if path := cmd.String("file"); path != "" {
		f, err := serializer.FromFile[cookbook.RecipeInput](path)
		if err != nil {
			return in, fmt.Errorf("failed to load recipe from %q: %w", path, err)
		}
		in = *f
	}
	if cmd.IsSet("title") {
		in.Title = cmd.String("title")
	}
	if cmd.IsSet("ingredient") {
		in.Ingredients = strings.Join(cmd.StringSlice("ingredient"), "\n")
	}
	if cmd.IsSet("step") {
		in.Steps = strings.Join(cmd.StringSlice("step"), "\n")
	}
	if cmd.IsSet("duration") {
		in.Duration = cookbook.Minutes(cmd.String("duration"))
	}
	return in, nil
}

func addCmd() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add a recipe to the book",
		Description: `Add a recipe. Title, at least one ingredient, at least one step and the
cooking time are required.

  resep add --title "Soto Ayam" -i "1 ekor ayam" -i "2 batang serai" \
    -s "Rebus ayam" -s "Tumis bumbu" -d 45

  resep add --file soto.yaml`,
		Flags: recipeFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in, err := inputFromCmd(cmd, cookbook.RecipeInput{})
			if err != nil {
				return err
			}

			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			idx, err := book.Add(in)
			if err != nil {
				return err
			}
			if err := saveBook(ctx, cmd, book); err != nil {
				return err
			}

			fmt.Fprintf(stdout(cmd), "Added %q as recipe %d.\n", strings.TrimSpace(in.Title), idx+1)
			return nil
		},
	}
}

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Replace the fields of a recipe",
		ArgsUsage: "<no>",
		Description: `Update the recipe with the given number from "resep list". Fields that
are not given keep their current value.

  resep update 2 --duration 30`,
		Flags: recipeFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pos, err := singlePosition(cmd)
			if err != nil {
				return err
			}

			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			current, err := book.Get(pos - 1)
			if err != nil {
				return err
			}
			in, err := inputFromCmd(cmd, cookbook.RecipeInput{
				Title:       current.Title,
				Ingredients: current.Ingredients,
				Steps:       current.Steps,
				Duration:    cookbook.Minutes(strconv.Itoa(current.Duration)),
			})
			if err != nil {
				return err
			}
			if err := book.Update(pos-1, in); err != nil {
				return err
			}
			if err := saveBook(ctx, cmd, book); err != nil {
				return err
			}

			fmt.Fprintf(stdout(cmd), "Updated recipe %d.\n", pos)
			return nil
		},
	}
}

func removeCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Remove one or more recipes",
		ArgsUsage: "<no>...",
		Description: `Remove recipes by their numbers in "resep list". Nothing is removed when
any number does not exist.

  resep remove 1 3`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			positions, err := parsePositions(cmd.Args().Slice())
			if err != nil {
				return err
			}

			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			n, err := book.RemoveSelected(book.ListAll(), positions)
			if err != nil {
				return err
			}
			if err := saveBook(ctx, cmd, book); err != nil {
				return err
			}

			fmt.Fprintf(stdout(cmd), "Removed %d recipe(s), %d left.\n", n, book.Len())
			return nil
		},
	}
}

func clearCmd() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Remove every recipe",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Confirm removing every recipe",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !cmd.Bool("yes") {
				return fmt.Errorf("refusing to clear the book without --yes")
			}

			book, err := openBook(ctx, cmd)
			if err != nil {
				return err
			}
			n := book.Clear()
			if err := saveBook(ctx, cmd, book); err != nil {
				return err
			}

			fmt.Fprintf(stdout(cmd), "Removed %d recipe(s).\n", n)
			return nil
		},
	}
}
