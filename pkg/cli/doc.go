// Package cli implements the command-line interface for resep, a recipe book
// manager.
//
// # Overview
//
// Every command works on one recipe book, the working book named by --book
// (env RESEP_BOOK, default resep.csv). The book is loaded when the command
// starts; a book that does not exist yet opens empty. Commands that change
// the book write it back when they succeed, so state carries from one
// invocation to the next only through that table.
//
// Recipes are addressed by their number in book order, as printed in the NO
// column of every listing. Numbers start at 1.
//
// # Commands
//
// Changing the book:
//
//	resep add --title "Soto Ayam" -i Ayam -i Serai -s "Rebus ayam" -d 45
//	resep add --file soto.yaml
//	resep update 2 --duration 30
//	resep remove 1 3
//	resep clear --yes
//
// Reading the book:
//
//	resep list [--format table|json|yaml] [--output FILE]
//	resep show 2
//	resep search soto
//	resep search --by ingredient santan
//	resep suggest "rendangg"
//	resep filter --max 30
//	resep sort --by title --desc
//	resep sort --by duration
//
// A title search that matches nothing prints the closest title when one is
// within two edits. Sorting by duration reorders the book and saves it;
// sorting by title only changes the listing.
//
// Interchange:
//
//	resep import buku.csv
//	resep import https://example.com/resep.csv
//	resep import cm://dapur/resep
//	resep export oci://ghcr.io/dapur/resep:v1
//	resep export -
//
// Tables use the header Judul,Bahan,Langkah,Waktu. Import is all or nothing.
//
// Serving:
//
//	resep serve --port 8080 --save
//
// # Global Flags
//
//	--book, -b     Working book location (default: resep.csv)
//	--log-level    Log level: debug, info, warn, error (default: warn)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Errors
//
// Failures from the recipe book carry an error code; the CLI turns each code
// into a short message and exits with status 1.
package cli
