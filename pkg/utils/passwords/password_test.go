package passwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()
	plaintext := "password123"
	pass, err := NewPassword(PasswordInput{Password: plaintext})
	require.NoError(t, err)
	require.True(t, IsArgonEncoded(pass.String()))

	match, err := pass.ComparePasswordAndHash(PasswordInput{Password: plaintext})
	require.NoError(t, err)
	require.True(t, match)

	match, err = pass.ComparePasswordAndHash(PasswordInput{Password: strings.ToUpper(plaintext)})
	require.NoError(t, err)
	require.False(t, match)
}

func TestNewPassword_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewPassword(PasswordInput{Password: "short"})
	require.Error(t, err)
	_, err = NewPassword(PasswordInput{Password: strings.Repeat("x", MaxPasswordLength+1)})
	require.Error(t, err)
}

func TestIsArgonEncoded(t *testing.T) {
	t.Parallel()

	require.True(t, IsArgonEncoded("$argon2id$v=19$m=65536,t=3,p=2$abc$def"))
	require.False(t, IsArgonEncoded(""))
	require.False(t, IsArgonEncoded("$argon2i$v=19$m=65536,t=3,p=2$abc$def"))
}

func TestCredentials(t *testing.T) {
	t.Parallel()

	creds, err := NewCredentials("demo", "hydra-demo")
	require.NoError(t, err)
	require.True(t, creds.Verify("demo", "hydra-demo"))
	require.True(t, creds.Verify(" DEMO ", "hydra-demo"))
	require.False(t, creds.Verify("demo", "wrong-password"))
	require.False(t, creds.Verify("other", "hydra-demo"))

	// A pre-hashed password is used as is.
	again, err := NewCredentials("demo", creds.Hash.String())
	require.NoError(t, err)
	require.Equal(t, creds.Hash, again.Hash)
	require.True(t, again.Verify("demo", "hydra-demo"))

	_, err = NewCredentials("demo", "")
	require.ErrorIs(t, err, ErrNoPassword)

	var none *Credentials
	require.False(t, none.Verify("demo", "hydra-demo"))
}
