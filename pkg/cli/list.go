package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/docdive/pkg/registry"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var category string

	return &cli.Command{
		Name:  "list",
		Usage: "List registered documentation libraries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "category",
				Usage:       "Only show libraries in this category",
				Aliases:     []string{"c"},
				Destination: &category,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			reg := registry.New()

			if category != "" {
				names := reg.ByCategory()[category]
				for _, name := range names {
					printLibrary(reg, name)
				}
				return nil
			}

			for _, name := range reg.ListNames() {
				printLibrary(reg, name)
			}
			return nil
		},
	}
}

func printLibrary(reg *registry.Registry, name string) {
	lib, ok := reg.Get(name)
	if !ok {
		return
	}
	fmt.Fprintf(os.Stdout, "%-16s %-10s %s\n", lib.Name, lib.Category, lib.Description)
}
