package encryption

import (
	"strings"
	"testing"
)

const zeroKeyHex = "0000000000000000000000000000000000000000000000000000000000000000"

func TestNewManagerFromHex(t *testing.T) {
	m, err := NewManagerFromHex(zeroKeyHex, "")
	if err != nil {
		t.Fatalf("NewManagerFromHex() error = %v", err)
	}
	if m.CipherType() != CipherChaCha20Poly1305 {
		t.Errorf("CipherType() = %v, want %v", m.CipherType(), CipherChaCha20Poly1305)
	}

	m, err = NewManagerFromHex(zeroKeyHex, "aes-256-gcm")
	if err != nil {
		t.Fatalf("NewManagerFromHex() error = %v", err)
	}
	if m.CipherType() != CipherAES256GCM {
		t.Errorf("CipherType() = %v, want %v", m.CipherType(), CipherAES256GCM)
	}
}

func TestNewManagerFromHex_Errors(t *testing.T) {
	cases := map[string][2]string{
		"invalid hex":        {"not-hex", ""},
		"wrong length":       {"deadbeef", ""},
		"unsupported cipher": {zeroKeyHex, "totally-not-a-cipher"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := NewManagerFromHex(in[0], in[1]); err == nil {
				t.Error("expected error")
			}
		})
	}
}

type session struct {
	Token string
	Roles []string
}

func TestSealJSON_RoundTrip(t *testing.T) {
	m, err := NewManagerFromHex(zeroKeyHex, "")
	if err != nil {
		t.Fatalf("NewManagerFromHex() error = %v", err)
	}

	in := session{Token: "abc.def", Roles: []string{"admin"}}
	sealed, err := SealJSON(m, in)
	if err != nil {
		t.Fatalf("SealJSON() error = %v", err)
	}
	if strings.Contains(string(sealed), "abc.def") {
		t.Error("sealed output leaks the token")
	}

	out, err := OpenJSON[session](m, sealed)
	if err != nil {
		t.Fatalf("OpenJSON() error = %v", err)
	}
	if out.Token != in.Token || len(out.Roles) != 1 || out.Roles[0] != "admin" {
		t.Errorf("OpenJSON() = %+v, want %+v", out, in)
	}
}

func TestOpenJSON_WrongKey(t *testing.T) {
	a, _ := NewManagerFromHex(zeroKeyHex, "")
	b, _ := NewManagerFromHex(strings.Repeat("11", KeySize), "")

	sealed, err := SealJSON(a, "secret")
	if err != nil {
		t.Fatalf("SealJSON() error = %v", err)
	}
	if _, err := OpenJSON[string](b, sealed); err == nil {
		t.Error("OpenJSON() with the wrong key succeeded")
	}
}

func TestOpenJSON_BadPayload(t *testing.T) {
	m, _ := NewManagerFromHex(zeroKeyHex, "")
	sealed, err := m.Seal([]byte("{not json"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if _, err := OpenJSON[session](m, sealed); err == nil {
		t.Error("expected unmarshal error")
	}
}
