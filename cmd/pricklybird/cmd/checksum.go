package cmd

import (
	"github.com/pricklybird/pricklybird/pkg/pricklybird"
	"github.com/spf13/cobra"
)

// checksumCmd represents the checksum command
var checksumCmd = &cobra.Command{
	Use:   "checksum [hex]",
	Short: "Print the CRC-8 checksum of the input bytes",
	Long: `Print the CRC-8 checksum of the input bytes, both as a hex byte and
as its codebook word.

Example:
  pricklybird checksum deadbeef`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readEncodeInput(args, cmd.InOrStdin())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		crc := pricklybird.CalculateCRC8(data)
		cmd.Printf("0x%02x %s\n", crc, pricklybird.WordForByte(crc))
	},
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}
