// Package cmd contains the node cli app
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// url is shared by the commands since only one runs per invocation.
var url string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "A client for talking to a ledger node",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
