package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/packcast/internal/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "packdump",
	Short: "packdump - classify and dump fixed-size tagged records",
	Long: `packdump reads a capture file of fixed-size tagged records, attempts
every declared subtype view against each record, and prints the typed
fields of the views that hold.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.ConfigureRuntime()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
