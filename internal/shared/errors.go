package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Library errors
	ErrTrackNotFound  = fmt.Errorf("track not found")
	ErrDuplicateTrack = fmt.Errorf("track already in library")
	ErrEmptyLibrary   = fmt.Errorf("library is empty")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
	ErrUnknownFormat   = fmt.Errorf("unknown export format")
)
