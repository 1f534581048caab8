package cmd

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/pricklybird/pricklybird/pkg/pricklybird"
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [hex]",
	Short: "Encode bytes as pricklybird words",
	Long: `Encode bytes as pricklybird words with a trailing checksum word.

The input is a hex string argument, or raw bytes from stdin when no
argument is given.

Examples:
  pricklybird encode deadbeef
  head -c 16 /dev/urandom | pricklybird encode`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readEncodeInput(args, cmd.InOrStdin())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		cmd.Println(pricklybird.Encode(data))
	},
}

// readEncodeInput resolves the payload from a hex argument or raw stdin.
func readEncodeInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 1 {
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
