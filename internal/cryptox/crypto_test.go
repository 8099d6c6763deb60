package cryptox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	if len(key1) != keyLen {
		t.Errorf("expected %d byte key, got %d", keyLen, len(key1))
	}
	if bytes.Equal(key1, DeriveKey([]byte("secret-passwore"), salt)) {
		t.Errorf("expected different results for different passwords, got same")
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	if bytes.Equal(DeriveKey(password, []byte("salt-1")), DeriveKey(password, []byte("salt-2"))) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	h := HashPassword("hunter22")
	require.True(t, strings.HasPrefix(h, "argon2id$"))

	ok, err := VerifyPassword("hunter22", h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("hunter23", h)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	assert.NotEqual(t, HashPassword("same"), HashPassword("same"))
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, in := range []string{"", "plain", "bcrypt$a$b", "argon2id$!!$abc", "argon2id$c2FsdA$!!"} {
		_, err := VerifyPassword("x", in)
		assert.ErrorIs(t, err, ErrMalformedHash, in)
	}
}
