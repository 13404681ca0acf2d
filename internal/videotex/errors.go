package videotex

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedGlyph is returned by MapChar for characters the
	// terminal cannot display
	ErrUnsupportedGlyph = errors.New("unsupported glyph")

	// ErrRepeatCountOutOfRange is returned when a repeat count does not
	// fit the protocol's encodable span; callers must split the run
	ErrRepeatCountOutOfRange = errors.New("repeat count out of range")

	// ErrRepeatWithoutGlyph is returned when a repeat is requested for a
	// character that is not the last one written
	ErrRepeatWithoutGlyph = errors.New("repeat requested without matching glyph")

	// ErrInvalidPattern is returned for malformed mosaic patterns
	ErrInvalidPattern = errors.New("invalid mosaic pattern")

	// ErrInvalidDirection is returned by Move for a code that is not one
	// of the four cursor steps
	ErrInvalidDirection = errors.New("invalid cursor direction")
)

// TransportError reports a failed write or read on the underlying link.
// The encoder does not retry and leaves its shadow state untouched.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
