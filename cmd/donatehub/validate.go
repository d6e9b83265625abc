package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"donatehub/internal/i18n"
	"donatehub/internal/seed"
	"donatehub/internal/volunteering"
	"donatehub/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "Run a JSON candidate through the volunteering dialog against the seed counties",
	ArgsUsage: "<file.json|->",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:     "category",
			Aliases:  []string{"c"},
			Usage:    "Resource category the dialog is opened for",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   "Language of the validation messages",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit("expected exactly one candidate file, use - for stdin", 2)
		}

		candidate, err := readCandidate(c.Args().First())
		if err != nil {
			return err
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		catalog, err := i18n.Load(cfg.DefaultLanguage)
		if err != nil {
			return err
		}

		submit := volunteering.SubmitterFunc(func(_ context.Context, req *types.DonateVolunteeringRequest) error {
			pp.Println(req)
			return nil
		})

		dialog := volunteering.NewDialog(catalog.Translator(c.String("lang")), seed.Counties, c.Int("category"), submit)

		delete(candidate, volunteering.FieldCategory)
		delete(candidate, "type")
		if err := dialog.Controller().SetAll(candidate); err != nil {
			return cli.Exit(err.Error(), 2)
		}

		err = dialog.Submit(c.Context)

		var fieldErrs volunteering.FieldErrors
		if errors.As(err, &fieldErrs) {
			pp.Println(fieldErrs.Messages())
			return cli.Exit("candidate is invalid", 1)
		}

		return err
	},
}

func readCandidate(name string) (map[string]any, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open candidate: %w", err)
		}
		defer f.Close()
		r = f
	}

	var candidate map[string]any
	if err := json.NewDecoder(r).Decode(&candidate); err != nil {
		return nil, fmt.Errorf("decode candidate: %w", err)
	}

	return candidate, nil
}
