package main

import (
	"log"

	"github.com/dapur-nusantara/resep/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
