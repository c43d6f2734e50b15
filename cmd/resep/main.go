package main

import (
	"github.com/dapur-nusantara/resep/pkg/cli"
)

func main() {
	cli.Execute()
}
