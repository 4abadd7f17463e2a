package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "pgnest",
		Usage: "PG/hostel tenant dashboard server",
		Commands: []*cli.Command{
			serveCommand,
			catalogCommand,
			resetCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
