package main

import (
	"log"

	"github.com/mithrel/flipdeck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
