package download

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of them,
// except those coming from a ConfirmFunc; match with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrTargetIsDirectory = errors.New("target is a directory")
	ErrDownloadFailed    = errors.New("download failed")
	ErrWriteFailed       = errors.New("write failed")
)
