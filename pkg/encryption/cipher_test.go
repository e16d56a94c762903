package encryption

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return key
}

func TestCipher_RoundTrip(t *testing.T) {
	for _, ct := range []CipherType{CipherChaCha20Poly1305, CipherXChaCha20Poly1305, CipherAES256GCM} {
		t.Run(string(ct), func(t *testing.T) {
			c, err := NewCipher(ct, randomKey(t))
			if err != nil {
				t.Fatalf("NewCipher() error = %v", err)
			}
			if c.Type() != ct {
				t.Errorf("Type() = %v, want %v", c.Type(), ct)
			}

			plaintext := []byte("authToken value")
			sealed, err := c.Seal(plaintext)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}
			if bytes.Contains(sealed, plaintext) {
				t.Error("sealed output contains the plaintext")
			}

			again, err := c.Seal(plaintext)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}
			if bytes.Equal(sealed, again) {
				t.Error("two seals of the same plaintext are identical, nonce not random")
			}

			opened, err := c.Open(sealed)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !bytes.Equal(opened, plaintext) {
				t.Errorf("Open() = %q, want %q", opened, plaintext)
			}
		})
	}
}

func TestCipher_OpenRejectsTampering(t *testing.T) {
	c, err := NewCipher(CipherChaCha20Poly1305, randomKey(t))
	if err != nil {
		t.Fatalf("NewCipher() error = %v", err)
	}
	sealed, err := c.Seal([]byte("x"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	sealed[len(sealed)-1] ^= 0xff
	if _, err := c.Open(sealed); err == nil {
		t.Error("Open() accepted tampered ciphertext")
	}
	if _, err := c.Open([]byte{1, 2}); err == nil {
		t.Error("Open() accepted short ciphertext")
	}
}

func TestNewCipher_Errors(t *testing.T) {
	if _, err := NewCipher(CipherChaCha20Poly1305, []byte("short")); err == nil {
		t.Error("expected key size error")
	}
	if _, err := NewCipher("rot13", randomKey(t)); err == nil {
		t.Error("expected unsupported cipher error")
	}
}

func TestParseCipherType(t *testing.T) {
	tests := []struct {
		in      string
		want    CipherType
		wantErr bool
	}{
		{"", CipherChaCha20Poly1305, false},
		{" AES-256-GCM ", CipherAES256GCM, false},
		{"xchacha20-poly1305", CipherXChaCha20Poly1305, false},
		{"totally-not-a-cipher", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCipherType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCipherType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseCipherType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
