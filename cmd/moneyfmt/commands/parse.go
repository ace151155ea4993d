package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

var parseCmd = &cobra.Command{
	Use:   "parse <value>",
	Short: "Parse a monetary value and print its canonical form",
	Example: `  moneyfmt parse "USD 1,234.56"
  moneyfmt parse "EUR 1.234,56"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := money.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), m)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
