package elevate

import "errors"

// ErrUnsupported means this platform has no elevation request mechanism.
var ErrUnsupported = errors.New("elevation relaunch not supported on this platform")
