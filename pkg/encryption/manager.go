// Package encryption seals small values, such as stored auth tokens, with an
// AEAD cipher.
package encryption

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Manager seals and opens values with a single cipher.
type Manager struct {
	cipher *Cipher
}

// NewManager creates a new encryption manager with the specified cipher.
func NewManager(cipher *Cipher) *Manager {
	return &Manager{cipher: cipher}
}

// NewManagerFromHex decodes a 64-character hex key and builds a Manager for
// the named cipher (blank selects the default).
func NewManagerFromHex(keyHex, cipherName string) (*Manager, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid key format (must be %d-char hex string): %w", KeySize*2, err)
	}
	t, err := ParseCipherType(cipherName)
	if err != nil {
		return nil, err
	}
	c, err := NewCipher(t, key)
	if err != nil {
		return nil, err
	}
	return NewManager(c), nil
}

// CipherType returns the cipher type used by this manager.
func (m *Manager) CipherType() CipherType {
	return m.cipher.Type()
}

// Seal encrypts plaintext.
func (m *Manager) Seal(plaintext []byte) ([]byte, error) {
	return m.cipher.Seal(plaintext)
}

// Open decrypts a value produced by Seal.
func (m *Manager) Open(sealed []byte) ([]byte, error) {
	return m.cipher.Open(sealed)
}

// SealJSON marshals value to JSON and seals it.
func SealJSON[T any](m *Manager, value T) ([]byte, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}
	return m.Seal(plaintext)
}

// OpenJSON opens sealed and unmarshals the JSON inside.
func OpenJSON[T any](m *Manager, sealed []byte) (T, error) {
	var value T
	plaintext, err := m.Open(sealed)
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(plaintext, &value); err != nil {
		return value, fmt.Errorf("unmarshal value: %w", err)
	}
	return value, nil
}
