package cmd

import (
	"github.com/pricklybird/pricklybird/pkg/pricklybird"
	"github.com/spf13/cobra"
)

var showCRC8 bool

// wordsCmd represents the words command
var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the 256-word codebook",
	Long: `Print the full codebook, one "byte word" pair per line, in byte order.
With --crc8, print the checksum lookup table instead.

Examples:
  pricklybird words
  pricklybird words --crc8`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if showCRC8 {
			table := pricklybird.CRC8Table()
			for i, v := range table {
				cmd.Printf("0x%02x 0x%02x\n", i, v)
			}
			return
		}

		words := pricklybird.Words()
		for i, w := range words {
			cmd.Printf("0x%02x %s\n", i, w)
		}
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().BoolVar(&showCRC8, "crc8", false, "Print the CRC-8 lookup table instead of the codebook")
}
