package cmd

import (
	"github.com/pricklybird/pricklybird/pkg/pricklybird"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a fresh identifier and print it as pricklybird words",
	Long: `Generate a fresh KSUID and print both its canonical form and the
pricklybird encoding of its 20 raw bytes. Useful for minting tokens that
can be read over the phone.

Example:
  pricklybird new`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		id := ksuid.New()
		cmd.Printf("ksuid: %s\n", id.String())
		cmd.Printf("words: %s\n", pricklybird.Encode(id.Bytes()))
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
