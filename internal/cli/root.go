package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acadex-io/acadex/internal/version"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "acadex",
	Short: "Acadex - academic policy advisory service",
	Long: `Acadex answers student questions about admissions, exams,
scholarships, and academic policy by retrieving the most relevant
policy documents, extracting the concrete requirements from them,
sanity-checking the extracted values, and rendering a structured
answer with follow-up suggestions.

Run "acadex serve" to start the HTTP API, or "acadex ask" to answer
a single question from the command line.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("acadex %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: config/<env>.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}
