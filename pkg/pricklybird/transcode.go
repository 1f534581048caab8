package pricklybird

import "fmt"

// BytesToWords maps each byte of data to its codebook word, in order.
// The result has the same length as the input; empty input yields an
// empty slice.
func BytesToWords(data []byte) []string {
	words := make([]string, len(data))
	for i, b := range data {
		words[i] = wordList[b]
	}
	return words
}

// WordsToBytes maps each word to its byte value, in order, ignoring letter
// case. It fails with ErrUnknownWord on the first word that is not in the
// codebook. Token shape (length, character set) is not checked here; the
// codec sanitizes tokens before they reach this layer.
func WordsToBytes(words []string) ([]byte, error) {
	data := make([]byte, len(words))
	for i, w := range words {
		b, ok := ByteForWord(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
		data[i] = b
	}
	return data, nil
}
