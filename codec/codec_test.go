package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	key := DeriveKey("gate secret")

	sealed, err := Seal(key, []byte("0xabc/42"))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "0xabc")

	plain, err := Open(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, "0xabc/42", string(plain))

	other, err := Seal(key, []byte("0xabc/42"))
	require.NoError(t, err)
	assert.NotEqual(t, sealed, other, "nonce must differ per seal")
}

func TestOpenRejectsTampering(t *testing.T) {
	key := DeriveKey("gate secret")
	sealed, err := Seal(key, []byte("payload"))
	require.NoError(t, err)

	_, err = Open(DeriveKey("other secret"), sealed)
	assert.Error(t, err)

	b := []byte(sealed)
	if b[20] == 'A' {
		b[20] = 'B'
	} else {
		b[20] = 'A'
	}
	_, err = Open(key, string(b))
	assert.Error(t, err)

	_, err = Open(key, "short")
	assert.Error(t, err)

	_, err = Open(key, "!!not base64!!")
	assert.Error(t, err)
}

func TestSealRejectsBadKey(t *testing.T) {
	_, err := Seal([]byte("short"), []byte("x"))
	assert.Error(t, err)
}
