package pagination

import "errors"

var (
	// ErrToggleInProgress is returned by Toggle while a previous toggle is in flight.
	ErrToggleInProgress = errors.New("pagination: toggle already in progress")
)
