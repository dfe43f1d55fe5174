package main

import (
	"os"

	"github.com/SUNET/captedit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
