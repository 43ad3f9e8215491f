package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func newTestKeyring(env map[string]string) *systemKeyring {
	return &systemKeyring{lookupEnv: func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}}
}

func TestKeyring_RoundTrip(t *testing.T) {
	keyring.MockInit()
	k := newTestKeyring(nil)

	_, err := k.GetKey()
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, k.SetKey("hunter2"))
	key, err := k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", key)

	require.NoError(t, k.DeleteKey())
	_, err = k.GetKey()
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, k.DeleteKey(), "deleting a missing key is fine")
}

func TestKeyring_EnvOverride(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set(ServiceName, KeyName, "from-keychain"))
	k := newTestKeyring(map[string]string{EnvKey: "from-env"})

	key, err := k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
	assert.True(t, k.IsAvailable())
}

func TestKeyring_RejectsEmptyKey(t *testing.T) {
	keyring.MockInit()
	assert.Error(t, newTestKeyring(nil).SetKey(""))
}

func TestKeyring_Available(t *testing.T) {
	keyring.MockInit()
	assert.True(t, newTestKeyring(nil).IsAvailable())
}
