/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pricklybird",
	Short: "Convert bytes to and from human-transcribable words",
	Long: `pricklybird converts binary data (keys, fingerprints, tokens) to and
from a text form built from 256 short words, with a trailing checksum word
that catches transcription mistakes.

Examples:
  pricklybird encode deadbeef
  pricklybird decode turf-port-rust-warn-void`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
