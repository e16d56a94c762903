package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// CipherType names an AEAD algorithm.
type CipherType string

const (
	// CipherChaCha20Poly1305 is the default.
	CipherChaCha20Poly1305 CipherType = "chacha20-poly1305"
	// CipherXChaCha20Poly1305 uses a 24-byte nonce.
	CipherXChaCha20Poly1305 CipherType = "xchacha20-poly1305"
	CipherAES256GCM         CipherType = "aes-256-gcm"
)

// KeySize is the key length every supported cipher expects.
const KeySize = chacha20poly1305.KeySize

// ParseCipherType maps a configuration value to a CipherType. Blank selects
// the default.
func ParseCipherType(s string) (CipherType, error) {
	switch t := CipherType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return CipherChaCha20Poly1305, nil
	case CipherChaCha20Poly1305, CipherXChaCha20Poly1305, CipherAES256GCM:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported cipher %q (must be %s, %s or %s)", s,
			CipherChaCha20Poly1305, CipherXChaCha20Poly1305, CipherAES256GCM)
	}
}

// Cipher wraps an AEAD cipher with metadata.
type Cipher struct {
	aead       cipher.AEAD
	cipherType CipherType
}

// NewCipher builds a cipher of the given type. key must be KeySize bytes.
func NewCipher(t CipherType, key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size: got %d, want %d", len(key), KeySize)
	}

	var (
		aead cipher.AEAD
		err  error
	)
	switch t {
	case CipherChaCha20Poly1305:
		aead, err = chacha20poly1305.New(key)
	case CipherXChaCha20Poly1305:
		aead, err = chacha20poly1305.NewX(key)
	case CipherAES256GCM:
		var block cipher.Block
		block, err = aes.NewCipher(key)
		if err == nil {
			aead, err = cipher.NewGCM(block)
		}
	default:
		return nil, fmt.Errorf("unsupported cipher %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s cipher: %w", t, err)
	}

	return &Cipher{aead: aead, cipherType: t}, nil
}

// Seal encrypts plaintext. Output format: [nonce][ciphertext+tag].
func (c *Cipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func (c *Cipher) Open(sealed []byte) ([]byte, error) {
	n := c.aead.NonceSize()
	if len(sealed) < n {
		return nil, fmt.Errorf("ciphertext too short: got %d, need at least %d", len(sealed), n)
	}

	plaintext, err := c.aead.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

// Type returns the cipher type.
func (c *Cipher) Type() CipherType {
	return c.cipherType
}
