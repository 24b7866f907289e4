package setting

import "errors"

var (
	// ErrSettingNotFound is returned by Delete when the key has no row.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidSettingKey is returned when the key is outside the known set.
	ErrInvalidSettingKey = errors.New("invalid setting key")
)
