package funimg

import (
	"errors"
	"fmt"
)

// Validation errors returned by the option records. Callers should test
// them with errors.Is since they are wrapped with the offending value.
var (
	ErrInvalidOrder       = errors.New("funimg: farey order must be at least 1")
	ErrFareyOrderTooLarge = errors.New("funimg: farey order too large for the canvas")
	ErrInvalidSize        = errors.New("funimg: image size must be positive")
	ErrInvalidMode        = errors.New("funimg: unknown ulam spiral mode")
	ErrInvalidZoom        = errors.New("funimg: zoom must be within [0,1]")
	ErrInvalidWave        = errors.New("funimg: unknown wave type")
	ErrInvalidBlend       = errors.New("funimg: unknown blend mode")
)

func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
