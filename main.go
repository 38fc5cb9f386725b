package main

import (
	"os"

	"github.com/beka-birhanu/vinom-maze/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
