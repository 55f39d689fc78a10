//go:build ignore
// +build ignore

package main

import (
	"log"

	flipdeck "github.com/mithrel/flipdeck/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := flipdeck.NewRootCmd()

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "FLIPDECK",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
