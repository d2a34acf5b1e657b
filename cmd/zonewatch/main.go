package main

import (
	"os"

	"github.com/zonewatch-systems/zonewatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
