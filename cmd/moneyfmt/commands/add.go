package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

var addCmd = &cobra.Command{
	Use:   "add <value> <value>...",
	Short: "Add monetary values denominated in the same currency",
	Example: `  moneyfmt add "USD 1.05" "USD 2.10"
  moneyfmt add "EUR 1,50" "EUR 2,25" "EUR 0,25"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sum, err := money.Parse(args[0])
		if err != nil {
			return err
		}
		for _, arg := range args[1:] {
			m, err := money.Parse(arg)
			if err != nil {
				return err
			}
			sum, err = sum.Add(m)
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), sum.FormatCode())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
