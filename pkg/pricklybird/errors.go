package pricklybird

import "errors"

// Decode failures. Every error returned by Decode or WordsToBytes wraps
// exactly one of these, so callers can switch on the failure kind with
// errors.Is.
var (
	// ErrEmptyInput reports input that is empty after trimming whitespace.
	ErrEmptyInput = errors.New("pricklybird: empty input")

	// ErrMalformedInput reports a structural violation: an empty token from
	// a leading, trailing or doubled delimiter, a token of the wrong length,
	// or fewer than two tokens.
	ErrMalformedInput = errors.New("pricklybird: malformed input")

	// ErrInvalidCharacter reports a token containing a non-ASCII byte, an
	// ASCII control character, or whitespace.
	ErrInvalidCharacter = errors.New("pricklybird: invalid character")

	// ErrUnknownWord reports a well-formed token that is not in the codebook.
	ErrUnknownWord = errors.New("pricklybird: unknown word")

	// ErrChecksumMismatch reports structurally valid input whose recomputed
	// checksum differs from the transmitted checksum word. It is kept
	// distinct from the structural kinds above because it means the content
	// was altered, not misformatted.
	ErrChecksumMismatch = errors.New("pricklybird: checksum mismatch")
)
