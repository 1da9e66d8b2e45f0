package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey          = errors.New("no API key configured, run 'lsq login' or set LSQ_API_KEY")
	ErrEmptyAPIKey       = errors.New("API key must not be empty")
	ErrInvalidOutput     = errors.New("invalid output format, use table, json or yaml")
	ErrInvalidPageNumber = errors.New("--page must be a positive number")
	ErrInvalidPageSize   = errors.New("--per-page must be between 1 and 100")
)

// Subscription command errors.
var (
	ErrInvalidPauseMode = errors.New("pause mode must be void or free")
	ErrInvalidResumesAt = errors.New("--resumes-at must be an RFC 3339 timestamp")
)
