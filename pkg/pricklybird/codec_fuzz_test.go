//go:build fuzz
// +build fuzz

package pricklybird

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// FuzzEncodeDecode_RoundTrip checks that every byte sequence survives a
// round trip unchanged.
func FuzzEncodeDecode_RoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	f.Add([]byte("arbitrary payload"))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 100000 {
			t.Skip("input too large for fuzz test")
		}

		text := Encode(data)
		if len(data) == 0 {
			if text != "" {
				t.Fatalf("Encode of empty payload = %q, want empty string", text)
			}
			return
		}

		got, err := Decode(text)
		if err != nil {
			t.Fatalf("Decode(Encode(%x)) failed: %v", data, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("round trip mismatch: got %x, want %x", got, data)
		}
	})
}

// FuzzDecode_ArbitraryText checks that Decode never panics and never
// returns data without a matching checksum, whatever the input.
func FuzzDecode_ArbitraryText(f *testing.F) {
	f.Add("")
	f.Add("orca")
	f.Add("turf-port-rust-warn-void")
	f.Add("-risk-king-orca-husk")
	f.Add("zzzz-king")
	f.Add("flea- \t -full")

	f.Fuzz(func(t *testing.T, text string) {
		if len(text) > 100000 {
			t.Skip("input too large for fuzz test")
		}

		data, err := Decode(text)
		if err != nil {
			return
		}
		// Anything Decode accepts must re-encode to the canonical lowercase
		// form of the input.
		canonical := strings.ToLower(strings.Trim(text, " \t\n\r\v\f"))
		if got := Encode(data); got != canonical {
			t.Errorf("accepted text %q re-encodes to %q", text, got)
		}
	})
}

// FuzzDecode_SubstitutionDetected replaces one data word of a valid
// encoding with the word for a different byte value and requires decode to
// fail with a checksum mismatch.
func FuzzDecode_SubstitutionDetected(f *testing.F) {
	f.Add([]byte{0x12, 0x34, 0x56}, uint(0), byte(0x01))
	f.Add([]byte("longer test payload"), uint(5), byte(0xFF))

	f.Fuzz(func(t *testing.T, data []byte, pos uint, flip byte) {
		if len(data) == 0 || len(data) > 10000 {
			t.Skip("need a nonempty payload")
		}
		pos %= uint(len(data))
		if flip == 0 {
			t.Skip("substitution changes nothing")
		}

		words := strings.Split(Encode(data), Delimiter)
		words[pos] = WordForByte(data[pos] ^ flip)
		_, err := Decode(strings.Join(words, Delimiter))
		if !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("substitution at byte %d of %x went undetected: err = %v", pos, data, err)
		}
	})
}
