package cache

import "errors"

// ErrMiss is returned by a tier when the key is absent or expired.
var ErrMiss = errors.New("cache miss")
