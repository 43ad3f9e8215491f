package repository

import (
	"context"
)

// KeyValueRepository is the local storage medium: string values under string keys
type KeyValueRepository interface {
	// Get returns the value for key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
