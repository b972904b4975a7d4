package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aria",
		Short: "Inspect the typed ARIA attribute catalog",
		Long: `aria prints the catalogs exposed by github.com/vango-go/aria.

The library maps strongly-typed values to canonical WAI-ARIA attribute
name/value pairs. This tool lists what the catalog covers:

  • Non-abstract ARIA role tokens
  • Attribute names with their value kinds`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		rolesCmd(),
		attributesCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
