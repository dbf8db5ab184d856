package domain

import "errors"

var (
	// ErrProviderFailure signals that a content store call failed while
	// building a locale's document set. The whole build fails; nothing is
	// cached.
	ErrProviderFailure = errors.New("content provider failure")
	// ErrUnknownContentSource signals an unrecognized content source driver.
	ErrUnknownContentSource = errors.New("unknown content source")
)
