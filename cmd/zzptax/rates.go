package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/zzpboek/zzptax/internal/output"
)

func newRatesCmd(a *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the rate tables of the supported fiscal years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}
			years := reg.Years()
			if year != 0 {
				years = []int{year}
			}

			var buf bytes.Buffer
			for i, y := range years {
				rt, err := reg.Lookup(y)
				if err != nil {
					return err
				}
				if i > 0 {
					buf.WriteByte('\n')
				}
				buf.Write(output.FormatRateTable(rt))
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Only show this fiscal year")
	return cmd
}
