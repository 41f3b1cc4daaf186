package main

import (
	"landmark-explorer/internal/cli"
	"landmark-explorer/internal/logger"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		logger.Logger.Fatal(err)
	}
}
