package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pricklybird/pricklybird/pkg/pricklybird"
	"github.com/spf13/cobra"
)

var decodeRaw bool

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode pricklybird words back into bytes",
	Long: `Decode pricklybird words back into the original bytes, verifying the
trailing checksum word. Output is hex, or raw bytes with --raw.

Examples:
  pricklybird decode turf-port-rust-warn-void
  echo flea-flux-full | pricklybird decode
  pricklybird decode --raw blob-eggs-hair-king-meta-yell > payload.bin`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		text, err := readDecodeInput(args, cmd.InOrStdin())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		payload, err := pricklybird.Decode(text)
		if err != nil {
			if errors.Is(err, pricklybird.ErrChecksumMismatch) {
				cmd.Printf("Error: %v (re-check the transcription)\n", err)
			} else {
				cmd.Printf("Error: %v\n", err)
			}
			return
		}

		if decodeRaw {
			_, _ = os.Stdout.Write(payload)
			return
		}
		cmd.Printf("%x\n", payload)
	},
}

// readDecodeInput resolves the encoded text from an argument or stdin.
func readDecodeInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	text, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(text), nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&decodeRaw, "raw", false, "Write the decoded bytes instead of hex")
}
