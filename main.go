package main

import (
	"os"

	"github.com/dxltools/dxl-complete/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
