package main

import (
	"os"

	"github.com/perpshield/hedger/cmd/hedger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
