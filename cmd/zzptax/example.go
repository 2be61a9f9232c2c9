package main

import (
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zzpboek/zzptax/internal/config"
)

func newExampleCmd(_ *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example fiscal-year input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year() - 1
			}
			data, err := yaml.Marshal(config.NewInputParser().CreateExampleFinancials(year))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Fiscal year of the example (default: last year)")
	return cmd
}
