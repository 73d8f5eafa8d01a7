package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")

	sealed, err := Encrypt([]byte("provider access token"), key)
	require.NoError(t, err)
	assert.NotContains(t, sealed, "provider")

	plain, err := Decrypt(sealed, key)
	require.NoError(t, err)
	assert.Equal(t, "provider access token", plain)
}

func TestDecryptWithWrongKey(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	other := []byte("fedcba9876543210fedcba9876543210")

	sealed, err := Encrypt([]byte("secret"), key)
	require.NoError(t, err)

	_, err = Decrypt(sealed, other)
	assert.Error(t, err)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")

	_, err := Decrypt("not base64!!!", key)
	assert.Error(t, err)

	_, err = Decrypt("c2hvcnQ", key)
	assert.Error(t, err)
}
