package store

import (
	"context"
	"errors"
)

// Store: текстовое key-value хранилище, одна запись на коллекцию.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

var ErrEmptyKey = errors.New("store: empty key")

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
