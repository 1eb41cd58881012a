package main

import (
	"os"

	"github.com/areto-app/areto/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
