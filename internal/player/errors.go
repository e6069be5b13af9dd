package player

import "errors"

var (
	// ErrAssetNotFound is returned when the resolver cannot locate an asset
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetLoadFailed is returned when an asset exists but cannot be opened or decoded
	ErrAssetLoadFailed = errors.New("asset load failed")
)

// IsAssetError reports whether err belongs to the asset error taxonomy
func IsAssetError(err error) bool {
	return errors.Is(err, ErrAssetNotFound) || errors.Is(err, ErrAssetLoadFailed)
}
