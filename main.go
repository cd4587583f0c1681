package main

import (
	"os"

	"github.com/tanmay/acuity/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
