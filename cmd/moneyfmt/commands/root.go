// Package commands implements the moneyfmt command line interface.
package commands

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "moneyfmt",
	Short: "Parse, format and add monetary values",
	Long: `moneyfmt parses monetary values written as "<CODE> <amount>",
renders them with format templates and performs checked arithmetic.

Amounts may be grouped in the comma-thousands style (1,234,567.89) or
the dot-thousands style (1.234.567,89).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
