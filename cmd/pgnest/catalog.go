package main

import (
	"pgnest/internal/seed"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var catalogCommand = &cli.Command{
	Name:  "catalog",
	Usage: "Pretty-print the seeded PG catalog",
	Action: func(c *cli.Context) error {
		pp.Println(seed.Listings())
		return nil
	},
}
