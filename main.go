package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/porquinho-server/internal/cli"
)

// Overridden with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	app := cli.NewApp(version)
	if err := app.Execute(); err != nil {
		logrus.WithError(err).Fatal("porquinho")
	}
}
