// Package sizeq implements the registry's two-call size discovery
// convention: probe for the required size, allocate, fill. The store can be
// mutated by other processes between the two calls, so a fill can come back
// undersized; the helper renegotiates a bounded number of times and then
// fails rather than chasing a racing writer forever.
package sizeq

import (
	"errors"
	"fmt"

	"github.com/joshuapare/regkit/pkg/types"
)

// MaxAttempts bounds the allocate/fill cycles before giving up.
const MaxAttempts = 4

// ErrMoreData reports that the buffer handed to a Probe was too small. The
// key-handle layer maps ERROR_MORE_DATA to it.
var ErrMoreData = errors.New("sizeq: buffer too small")

// ErrSizeUnstable reports that the value size kept changing between the size
// probe and the read, past the retry bound.
var ErrSizeUnstable = &types.Error{
	Kind: types.ErrKindPlatform,
	Msg:  "value size kept changing between size probe and read",
}

// Probe issues one platform query. A nil buf asks only for the required
// size. Otherwise the probe fills buf and reports the length actually used,
// or returns ErrMoreData alongside the newly required length.
type Probe func(buf []byte) (int, error)

// Get runs the probe/allocate/fill cycle and returns a buffer whose length
// is exactly the used length reported by the final call, never the probed
// capacity (trailing padding must not leak into typed decoding).
func Get(probe Probe) ([]byte, error) {
	need, err := probe(nil)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		b := make([]byte, need)
		n, err := probe(b)
		switch {
		case err == nil:
			if n > len(b) {
				return nil, fmt.Errorf("sizeq: used length %d exceeds buffer %d: %w", n, len(b), ErrSizeUnstable)
			}
			return b[:n], nil
		case errors.Is(err, ErrMoreData):
			need = n
		default:
			return nil, err
		}
	}
	return nil, fmt.Errorf("sizeq: gave up after %d attempts: %w", MaxAttempts, ErrSizeUnstable)
}
