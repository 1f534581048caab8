package pricklybird

import (
	"fmt"
	"strings"
)

const (
	// Delimiter joins tokens in the encoded text form.
	Delimiter = "-"

	// WordLength is the exact length of every codebook word.
	WordLength = 4
)

// asciiWhitespace is what Decode trims from the ends of its input: space
// plus the standard ASCII whitespace control characters.
const asciiWhitespace = " \t\n\r\v\f"

// Encode converts data to its pricklybird text form: one word per byte,
// followed by a checksum word, joined by hyphens. Encoding never fails;
// the empty input encodes to the empty string with no checksum word.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	crc := CalculateCRC8(data)
	words := BytesToWords(data)
	words = append(words, wordList[crc])
	return strings.Join(words, Delimiter)
}

// Decode parses pricklybird text back into the payload bytes, verifying the
// trailing checksum word. Leading and trailing ASCII whitespace is ignored
// and letter case inside tokens is insignificant. Failures wrap one of
// ErrEmptyInput, ErrMalformedInput, ErrInvalidCharacter, ErrUnknownWord or
// ErrChecksumMismatch.
func Decode(text string) ([]byte, error) {
	trimmed := strings.Trim(text, asciiWhitespace)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	tokens := strings.Split(trimmed, Delimiter)
	for i, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token at position %d", ErrMalformedInput, i)
		}
	}
	for _, tok := range tokens {
		if err := checkToken(tok); err != nil {
			return nil, err
		}
	}
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: need at least one data word and a checksum word", ErrMalformedInput)
	}

	decoded, err := WordsToBytes(tokens)
	if err != nil {
		return nil, err
	}

	payload := decoded[:len(decoded)-1]
	claimed := decoded[len(decoded)-1]
	if expected := CalculateCRC8(payload); expected != claimed {
		return nil, fmt.Errorf("%w: computed %q, transmitted %q",
			ErrChecksumMismatch, wordList[expected], wordList[claimed])
	}
	return payload, nil
}

// checkToken enforces the character-set and length rules on a single token.
// Character checks run byte-wise so that multi-byte UTF-8 sequences are
// rejected before any length or dictionary logic sees them.
func checkToken(tok string) error {
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= 0x80:
			return fmt.Errorf("%w: non-ASCII byte 0x%02x in token %q", ErrInvalidCharacter, c, tok)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			return fmt.Errorf("%w: whitespace in token %q", ErrInvalidCharacter, tok)
		case c < 0x20 || c == 0x7F:
			return fmt.Errorf("%w: control character 0x%02x in token %q", ErrInvalidCharacter, c, tok)
		}
	}
	if len(tok) != WordLength {
		return fmt.Errorf("%w: token %q is not %d letters", ErrMalformedInput, tok, WordLength)
	}
	return nil
}
