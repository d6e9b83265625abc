package main

import (
	"fmt"

	"donatehub/internal/utils"

	"github.com/urfave/cli/v2"
)

var nanoidCommand = &cli.Command{
	Name:  "nanoid",
	Usage: "Generate NanoIDs for use in seed files",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of IDs to generate",
			Value:   1,
		},
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"s"},
			Usage:   "Length of each ID, 0 for the default",
		},
	},
	Action: func(c *cli.Context) error {
		size := c.Int("size")
		for range c.Int("count") {
			if size > 0 {
				fmt.Println(utils.NanoIDSize(size))
				continue
			}
			fmt.Println(utils.NanoID())
		}
		return nil
	},
}
