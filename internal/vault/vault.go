// Package vault seals output tables under a passphrase so private keys can be
// carried off an air-gapped machine without sitting in clear text.
package vault

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Sealed layout:
//
//	magic(4) | salt(32) | memory(4) | iterations(4) | parallelism(1) | nonce(24) | ciphertext
//
// The header up to the nonce is authenticated as additional data.
const (
	SaltSize   = 32
	headerSize = len(magic) + SaltSize + 4 + 4 + 1
)

var magic = [4]byte{'A', 'G', 'V', '1'}

// maxMemory caps the Argon2 memory a sealed header may request (4 GiB).
const maxMemory = 4 << 20

// ErrNotSealed is returned when data does not start with the vault header.
var ErrNotSealed = errors.New("not a sealed vault file")

// ErrDecrypt is returned for a wrong passphrase or tampered data.
var ErrDecrypt = errors.New("vault: wrong passphrase or corrupted data")

// Params holds Argon2id parameters.
type Params struct {
	Memory      uint32 // in KiB
	Iterations  uint32
	Parallelism uint8
}

// deriveKey uses Argon2id to derive a 32-byte key from passphrase and salt.
func deriveKey(passphrase, salt []byte, p Params) []byte {
	return argon2.IDKey(passphrase, salt, p.Iterations, p.Memory, p.Parallelism, chacha20poly1305.KeySize)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Seal encrypts plaintext with Argon2id + XChaCha20-Poly1305.
func Seal(plaintext, passphrase []byte, p Params) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	header := make([]byte, 0, headerSize)
	header = append(header, magic[:]...)
	header = append(header, salt...)
	header = binary.LittleEndian.AppendUint32(header, p.Memory)
	header = binary.LittleEndian.AppendUint32(header, p.Iterations)
	header = append(header, p.Parallelism)

	key := deriveKey(passphrase, salt, p)
	defer zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, headerSize+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, header), nil
}

// IsSealed reports whether data starts with the vault header.
func IsSealed(data []byte) bool {
	return len(data) >= len(magic) && bytes.Equal(data[:len(magic)], magic[:])
}

// Open decrypts data produced by Seal.
func Open(sealed, passphrase []byte) ([]byte, error) {
	if !IsSealed(sealed) {
		return nil, ErrNotSealed
	}
	nonceSize := chacha20poly1305.NonceSizeX
	minSize := headerSize + nonceSize + chacha20poly1305.Overhead
	if len(sealed) < minSize {
		return nil, fmt.Errorf("sealed data too short: %d bytes, need at least %d", len(sealed), minSize)
	}

	header := sealed[:headerSize]
	off := len(magic)
	salt := header[off : off+SaltSize]
	off += SaltSize
	p := Params{
		Memory:      binary.LittleEndian.Uint32(header[off:]),
		Iterations:  binary.LittleEndian.Uint32(header[off+4:]),
		Parallelism: header[off+8],
	}
	if p.Iterations == 0 || p.Parallelism == 0 || p.Memory > maxMemory {
		return nil, ErrDecrypt
	}
	nonce := sealed[headerSize : headerSize+nonceSize]
	ciphertext := sealed[headerSize+nonceSize:]

	key := deriveKey(passphrase, salt, p)
	defer zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
