package crypto

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// Keyring provides secure key storage abstraction
type Keyring interface {
	GetKey() (string, error)
	SetKey(key string) error
	DeleteKey() error
	IsAvailable() bool
}

const (
	ServiceName = "tomatick"
	KeyName     = "db-encryption-key"

	// EnvKey overrides the keychain, for headless machines without one
	EnvKey = "TOMATICK_DB_KEY"
)

var ErrKeyNotFound = errors.New("encryption key not found")

type systemKeyring struct {
	lookupEnv func(string) (string, bool)
}

// NewKeyring returns a keyring backed by the OS keychain
// (Keychain, Secret Service or Credential Manager).
func NewKeyring() Keyring {
	return &systemKeyring{lookupEnv: os.LookupEnv}
}

// GetKey returns the key from the environment, then from the keychain
func (k *systemKeyring) GetKey() (string, error) {
	if key, ok := k.lookupEnv(EnvKey); ok && key != "" {
		return key, nil
	}

	key, err := keyring.Get(ServiceName, KeyName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to retrieve key from keychain: %w", err)
	}

	if key == "" {
		return "", ErrKeyNotFound
	}

	return key, nil
}

// SetKey stores the key in the keychain
func (k *systemKeyring) SetKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if err := keyring.Set(ServiceName, KeyName, key); err != nil {
		return fmt.Errorf("failed to store key in keychain (export %s instead): %w", EnvKey, err)
	}

	return nil
}

// DeleteKey removes the key from the keychain
func (k *systemKeyring) DeleteKey() error {
	err := keyring.Delete(ServiceName, KeyName)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete key from keychain: %w", err)
	}

	return nil
}

// IsAvailable reports whether a key can be stored: either the environment
// override is set or the keychain accepts writes.
func (k *systemKeyring) IsAvailable() bool {
	if key, ok := k.lookupEnv(EnvKey); ok && key != "" {
		return true
	}

	probe := "__tomatick_availability_test__"
	if err := keyring.Set(ServiceName, probe, "test"); err != nil {
		return false
	}
	_ = keyring.Delete(ServiceName, probe)
	return true
}
