package screen

import (
	"errors"
	"fmt"
)

// Display errors.
var (
	// ErrUnsupportedDisplay indicates the terminal cannot run the animation.
	ErrUnsupportedDisplay = errors.New("screen: unsupported display")

	// ErrTooSmall indicates the terminal is below the minimum size.
	ErrTooSmall = errors.New("screen: terminal too small")

	// ErrNoColor indicates the terminal lacks the required colour support.
	ErrNoColor = errors.New("screen: terminal lacks colour support")
)

// UnsupportedError carries the diagnostic details of a failed display
// initialisation.
type UnsupportedError struct {
	Width, Height int
	Colors        int
	Wrapped       error
}

func (e *UnsupportedError) Error() string {
	if e.Width > 0 || e.Height > 0 {
		return fmt.Sprintf("%v: %v (size %dx%d, %d colours)", ErrUnsupportedDisplay, e.Wrapped, e.Width, e.Height, e.Colors)
	}
	return fmt.Sprintf("%v: %v", ErrUnsupportedDisplay, e.Wrapped)
}

func (e *UnsupportedError) Unwrap() []error {
	return []error{ErrUnsupportedDisplay, e.Wrapped}
}
