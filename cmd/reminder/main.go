package main

import (
	"os"

	"birthday_reminder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
