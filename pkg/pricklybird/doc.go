// Package pricklybird converts binary data to and from a human-transcribable
// text form built from a fixed vocabulary of short words, with an embedded
// integrity check that catches transcription mistakes.
//
// # Text Format
//
// Every byte value maps to a unique four-letter word through a fixed
// 256-word codebook. Encoding renders one word per payload byte, appends one
// word for the CRC-8 of the payload, and joins the words with hyphens:
//
//	Encode([]byte{0xDE, 0xAD, 0xBE, 0xEF}) == "turf-port-rust-warn-void"
//
// The final word is always the checksum; length is implicit in the word
// count and there is no header or version marker. Encoding always emits
// lowercase, decoding accepts any letter case and ignores leading and
// trailing ASCII whitespace. The empty byte sequence encodes to the empty
// string with no checksum word.
//
// # Integrity
//
// The checksum is an 8-bit CRC (polynomial 0x1D, initial remainder zero, no
// reflection, no final XOR). A mistyped word, a dropped word or a swap of
// two adjacent words changes the recomputed checksum, so Decode fails with
// ErrChecksumMismatch instead of returning silently corrupted bytes. The
// check detects corruption; it cannot repair it.
//
// # Error Handling
//
// Decode fails fast with an error wrapping one of five sentinel values:
// ErrEmptyInput, ErrMalformedInput, ErrInvalidCharacter, ErrUnknownWord, or
// ErrChecksumMismatch. Match the kind with errors.Is:
//
//	data, err := pricklybird.Decode(text)
//	if errors.Is(err, pricklybird.ErrChecksumMismatch) {
//	    // structurally valid text, but the content was altered
//	}
//
// No partial output is ever returned on failure.
//
// # Thread Safety
//
// All operations are pure functions over the two read-only tables (the
// codebook and the CRC-8 lookup table), both fixed at package init. Every
// function is safe for concurrent use without synchronization.
package pricklybird
