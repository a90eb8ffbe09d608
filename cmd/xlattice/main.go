package main

import (
	"log"
	"os"

	"deedles.dev/xlattice/cmd/xlattice/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("xlattice: ")

	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
