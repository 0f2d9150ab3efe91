// Package metadata stores small key/value records of the local cache: the
// last token pair and the saved draft.
package metadata

import (
	"context"
)

type Key string

const (
	KeyAccessToken  Key = "access_token"
	KeyRefreshToken Key = "refresh_token"
	KeyDraft        Key = "draft"
)

// Repository returns (nil, nil) from Get for absent keys.
type Repository interface {
	Get(ctx context.Context, key Key) ([]byte, error)
	Set(ctx context.Context, key Key, value []byte) error
	Delete(ctx context.Context, keys ...Key) error
	Clear(ctx context.Context) error
}
