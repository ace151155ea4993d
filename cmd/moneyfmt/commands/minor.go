package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

var minorCmd = &cobra.Command{
	Use:   "minor <value>",
	Short: "Print a monetary value as an integer count of minor units",
	Example: `  moneyfmt minor "USD 123.45"
  moneyfmt minor "JPY 1000"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := money.Parse(args[0])
		if err != nil {
			return err
		}
		units, err := m.MinorUnits()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), units)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(minorCmd)
}
