package main

import (
	"os"

	"github.com/authcorp/libs/go/strongof/cmd/strongof/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
