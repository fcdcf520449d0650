// Package localstore is the key-value storage holding leave lists. It plays
// the role a browser's local storage would: whole values are read and
// written per key with no partial updates and no cross-key transactions.
package localstore

import "context"

type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
