// Package passwords hashes and checks passwords with argon2id.
package passwords

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/go-playground/validator/v10"
)

type Password string

var (
	params = &argon2id.Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: uint8(2),
		SaltLength:  16,
		KeyLength:   32,
	}

	validate = validator.New()
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 512
)

var ErrNoPassword = errors.New("no password configured")

// PasswordInput is a struct for validating password inputs
type PasswordInput struct {
	Password string `validate:"required,min=8,max=512"`
}

// NewPassword hashes input after checking its length.
func NewPassword(input PasswordInput) (Password, error) {
	if err := validate.Struct(input); err != nil {
		return "", err
	}

	hash, err := argon2id.CreateHash(input.Password, params)
	if err != nil {
		return "", err
	}
	return Password(hash), nil
}

// ComparePasswordAndHash compares the input to the password hash
func (p Password) ComparePasswordAndHash(input PasswordInput) (bool, error) {
	return argon2id.ComparePasswordAndHash(input.Password, string(p))
}

func (p Password) String() string {
	return string(p)
}

// IsArgonEncoded returns true if the input is an argon2id hash
func IsArgonEncoded(input string) bool {
	return strings.HasPrefix(input, "$argon2id$")
}

// Credentials is a single username/password pair, used by the demo backend.
type Credentials struct {
	Username string
	Hash     Password
}

// NewCredentials accepts either a plaintext password, which is hashed, or
// an existing argon2id hash.
func NewCredentials(username, password string) (*Credentials, error) {
	if password == "" {
		return nil, ErrNoPassword
	}
	if IsArgonEncoded(password) {
		return &Credentials{Username: username, Hash: Password(password)}, nil
	}
	hash, err := NewPassword(PasswordInput{Password: password})
	if err != nil {
		return nil, err
	}
	return &Credentials{Username: username, Hash: hash}, nil
}

// Verify reports whether username and password match. The username is
// compared case-insensitively.
func (c *Credentials) Verify(username, password string) bool {
	if c == nil {
		return false
	}
	userOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(username))),
		[]byte(strings.ToLower(c.Username)),
	) == 1
	match, err := c.Hash.ComparePasswordAndHash(PasswordInput{Password: password})
	return userOK && err == nil && match
}
