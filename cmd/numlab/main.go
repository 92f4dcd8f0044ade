package main

import (
	"os"

	"github.com/msto63/numlab/cmd/numlab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
