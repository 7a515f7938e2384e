package command

// root.go defines the root command for the libraryhub CLI.
// Global flags are set up here.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL string // global flag for API server URL
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "libraryhub",
	Short: "libraryhub - library catalog command line interface",
	Long: `libraryhub is an administrative tool for the library catalog API.
It can manage books and users, lend and take back copies, and inspect a
member's borrowing history.

Use "libraryhub command -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")

	rootCmd.AddCommand(bookCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(borrowCmd)
	rootCmd.AddCommand(returnCmd)
	rootCmd.AddCommand(borrowedCmd)
}
