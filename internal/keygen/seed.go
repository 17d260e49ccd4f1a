// Package keygen derives deterministic secp256k1 key material from a seed
// phrase and an integer index.
package keygen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Klingon-tech/airgap/pkg/types"
	"github.com/rs/zerolog"
)

// Seed is a parsed seed phrase: its words, in order, with all whitespace
// between them discarded. A Seed never prints its words.
type Seed struct {
	words []string
}

// isSeedSpace reports whether r separates seed words. This is unicode.IsSpace
// plus the ASCII information separators 0x1c-0x1f.
func isSeedSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// SplitWords splits text into seed words on any run of separator characters.
func SplitWords(text string) []string {
	return strings.FieldsFunc(text, isSeedSpace)
}

// ParseSeed splits text into words on any run of whitespace. Leading and
// trailing whitespace is ignored and case is preserved. Every word must be
// printable 7-bit ASCII, otherwise types.ErrEncoding is returned.
func ParseSeed(text string) (Seed, error) {
	words := SplitWords(text)
	for i, w := range words {
		for j := 0; j < len(w); j++ {
			if c := w[j]; c < 0x20 || c > 0x7e {
				return Seed{}, fmt.Errorf("%w: seed word %d is not printable ascii", types.ErrEncoding, i+1)
			}
		}
	}
	return Seed{words: words}, nil
}

// WordCount returns the number of words in the seed.
func (s Seed) WordCount() int {
	return len(s.words)
}

// Phrase returns the exact bytes hashed for index:
// the words joined by single spaces, a space, the decimal index and "\n".
func (s Seed) Phrase(index uint64) []byte {
	n := len(s.words) + 21
	for _, w := range s.words {
		n += len(w)
	}
	b := make([]byte, 0, n)
	for i, w := range s.words {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, w...)
	}
	b = append(b, ' ')
	b = strconv.AppendUint(b, index, 10)
	return append(b, '\n')
}

// String hides the seed words.
func (s Seed) String() string {
	return fmt.Sprintf("Seed(%d words, redacted)", len(s.words))
}

// MarshalZerologObject logs the word count only.
func (s Seed) MarshalZerologObject(e *zerolog.Event) {
	e.Int("words", len(s.words))
}
