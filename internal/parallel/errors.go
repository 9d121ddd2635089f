package parallel

import "errors"

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("parallel: pool closed")
