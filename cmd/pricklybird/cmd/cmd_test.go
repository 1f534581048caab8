package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	require.NoError(t, err)
	return buf.String()
}

func TestEncodeCommand(t *testing.T) {
	out := execute(t, "encode", "deadbeef")
	assert.Equal(t, "turf-port-rust-warn-void\n", out)
}

func TestEncodeCommand_BadHex(t *testing.T) {
	out := execute(t, "encode", "xyz")
	assert.Contains(t, out, "invalid hex input")
}

func TestDecodeCommand(t *testing.T) {
	out := execute(t, "decode", "turf-port-rust-warn-void")
	assert.Equal(t, "deadbeef\n", out)
}

func TestDecodeCommand_ChecksumMismatch(t *testing.T) {
	out := execute(t, "decode", "turf-port-rust-warn-warn")
	assert.Contains(t, out, "checksum mismatch")
	assert.Contains(t, out, "re-check the transcription")
}

func TestChecksumCommand(t *testing.T) {
	out := execute(t, "checksum", "deadbeef")
	assert.Equal(t, "0xea void\n", out)
}

func TestWordsCommand(t *testing.T) {
	out := execute(t, "words", "--crc8=false")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 256)
	assert.Equal(t, "0x00 acid", lines[0])
	assert.Equal(t, "0xff zone", lines[255])
}

func TestWordsCommand_CRC8Table(t *testing.T) {
	out := execute(t, "words", "--crc8")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 256)
	assert.Equal(t, "0x00 0x00", lines[0])
	assert.Equal(t, "0x01 0x1d", lines[1])
}

func TestNewCommand(t *testing.T) {
	out := execute(t, "new")
	require.Contains(t, out, "ksuid: ")
	require.Contains(t, out, "words: ")

	// The words line must carry 21 tokens: 20 KSUID bytes plus checksum.
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if rest, ok := strings.CutPrefix(line, "words: "); ok {
			assert.Len(t, strings.Split(rest, "-"), 21)
		}
	}
}

func TestReadEncodeInput_Stdin(t *testing.T) {
	data, err := readEncodeInput(nil, strings.NewReader("raw bytes"))
	require.NoError(t, err)
	assert.Equal(t, []byte("raw bytes"), data)
}

func TestReadDecodeInput_Stdin(t *testing.T) {
	text, err := readDecodeInput(nil, strings.NewReader("flea-flux-full\n"))
	require.NoError(t, err)
	assert.Equal(t, "flea-flux-full\n", text)
}
