package sentinel

import "errors"

// Sentinel errors for storage facts. Key-value and secret backends return
// these (optionally wrapped); services decide what they mean for the caller.
//
//   - ErrNotFound: key or record does not exist
//   - ErrCorrupt: stored bytes could not be decoded
//   - ErrUnavailable: backend temporarily unreachable
var (
	ErrNotFound    = errors.New("not found")
	ErrCorrupt     = errors.New("corrupt value")
	ErrUnavailable = errors.New("unavailable")
)
