// Package phrase creates seed phrases from the BIP-39 English word list.
//
// The derivation scheme treats a seed as opaque words, so BIP-39 is used only
// as a convenient source of memorable, checksummed phrases.
package phrase

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/airgap/internal/keygen"
	"github.com/tyler-smith/go-bip39"
)

// DefaultWords is the length of phrases created by Generate when not told otherwise.
const DefaultWords = 24

// entropyBits maps a phrase length to its BIP-39 entropy size.
var entropyBits = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// Generate creates a new random BIP-39 phrase with the given number of words.
func Generate(words int) (string, error) {
	bits, ok := entropyBits[words]
	if !ok {
		return "", fmt.Errorf("unsupported word count %d (want 12, 15, 18, 21 or 24)", words)
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	for i := range entropy {
		entropy[i] = 0
	}
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// Check describes a seed phrase without revealing it.
type Check struct {
	Words int
	// BIP39 is true when the phrase is a checksummed BIP-39 mnemonic.
	BIP39 bool
}

// Inspect reports the word count of text and whether it is a valid BIP-39
// mnemonic. Words are split exactly as keygen.ParseSeed splits them.
func Inspect(text string) Check {
	words := keygen.SplitWords(text)
	return Check{
		Words: len(words),
		BIP39: bip39.IsMnemonicValid(strings.Join(words, " ")),
	}
}
