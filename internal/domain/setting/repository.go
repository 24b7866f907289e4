package setting

import "context"

// Repository persists settings.
//
// Get returns (nil, nil) when the key has no row: absence is a result, not an
// error. Set is an atomic upsert keyed on the setting key; concurrent writers
// never produce duplicate rows.
type Repository interface {
	Get(ctx context.Context, key Key) (*Setting, error)
	GetAll(ctx context.Context) ([]*Setting, error)
	Set(ctx context.Context, s *Setting) error
	Delete(ctx context.Context, key Key) error
}
