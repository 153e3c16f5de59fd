// Package storage provides origin-scoped key/value storage areas and a
// same-document event target for change notifications.
package storage

import (
	"context"
	"errors"
)

// DefaultQuota is the per-origin byte budget used when none is configured.
const DefaultQuota = 5 << 20

// ErrQuotaExceeded is returned by SetItem when the write would grow the area
// past its quota.
var ErrQuotaExceeded = errors.New("storage: quota exceeded")

// Area is a persistent string key/value store scoped to one origin.
type Area interface {
	// GetItem reports ok=false when key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Keys(ctx context.Context) ([]string, error)
}

func itemSize(key, value string) int64 {
	return int64(len(key) + len(value))
}
