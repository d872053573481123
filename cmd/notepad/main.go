package main

import (
	"os"

	"github.com/iw2rmb/notepad/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
