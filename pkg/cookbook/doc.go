// Package cookbook is the command surface over a recipe store.
//
// A Cookbook owns one recipe.Store and serializes every command through a
// mutex, so the CLI and the concurrent HTTP API share the same semantics as
// a single caller issuing commands one at a time. Each command either
// commits fully or leaves the book unchanged.
//
// Listing commands return a recipe.View: the store indices in display
// order. Selections made by position (1-based, as printed) are resolved
// through the view they were made from:
//
//	cb := cookbook.New()
//	view, _ := cb.SearchByTitle("soto")
//	removed, err := cb.RemoveSelected(view, []int{1, 3})
//
// Views go stale after any mutation; callers list again before selecting.
//
// Every command logs at debug level and counts itself in
// resep_commands_total{command,result}.
package cookbook
