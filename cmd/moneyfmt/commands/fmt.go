package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/money"
)

var fmtTemplate string

var fmtCmd = &cobra.Command{
	Use:   "fmt <value>",
	Short: "Render a monetary value with a format template",
	Long: `Render a monetary value with a format template.

Template symbols: a (amount), c (code), s (symbol), m (minor-unit
symbol, switches the amount to minor units), n (minus sign for negative
amounts). A backslash escapes the next symbol.`,
	Example: `  moneyfmt fmt "USD -1234.56"
  moneyfmt fmt --template "nsa" "USD 1234.56"
  moneyfmt fmt --template "a m" "USD 1000.23"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := money.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), m.Format(fmtTemplate))
		return nil
	},
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtTemplate, "template", "t", "c na", "format template")
	rootCmd.AddCommand(fmtCmd)
}
