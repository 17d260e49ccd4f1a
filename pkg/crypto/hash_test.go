package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "hello",
			input: []byte("hello"),
			want:  "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:  "brainwallet phrase",
			input: []byte("correct horse battery staple"),
			want:  "c4bbcb1fbec99d65bf59d85c8cb62ee2db963f0fe106f483d9afa73bd4e39a8a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.input).String())
		})
	}
}

func TestHash160(t *testing.T) {
	got := Hash160([]byte("hello"))
	assert.Equal(t, "b6a9c8c230722b7c748331a8b450f05566dc7d0f", hex.EncodeToString(got[:]))
	assert.Equal(t, btcutil.Hash160([]byte("hello")), got[:])
}
