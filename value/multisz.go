package value

import (
	"fmt"

	"github.com/joshuapare/regkit/internal/wide"
	"github.com/joshuapare/regkit/pkg/types"
)

// EncodeMultiString encodes ss into the REG_MULTI_SZ block format: each
// string's UTF-16LE units followed by a NUL unit, then one list-terminating
// NUL unit. An empty list encodes to the single list terminator, not to a
// spurious empty entry. Entries must not contain interior NULs; decoding
// would split them there.
func EncodeMultiString(ss []string) []byte {
	if len(ss) == 0 {
		return []byte{0, 0}
	}
	var u []uint16
	for _, s := range ss {
		u = append(u, wide.EncodeNul(s)...)
	}
	u = append(u, 0)
	return wide.Bytes(u)
}

// DecodeMultiString decodes a REG_MULTI_SZ block into its ordered strings.
//
// Degenerate inputs decode rather than fail: a buffer shorter than one code
// unit (zero bytes, or one odd byte) is a valid empty list, and a block
// whose final entry lacks a terminator is treated as terminated at the
// buffer end. A malformed entry fails the whole decode with a Text error
// naming the entry; no partial list is returned.
func DecodeMultiString(data []byte) ([]string, error) {
	u := wide.Units(data)
	var out []string
	start := 0
	for i := 0; i <= len(u); i++ {
		if i < len(u) && u[i] != 0 {
			continue
		}
		if i == start {
			// Empty segment: the list terminator, or the buffer end.
			break
		}
		s, err := wide.DecodeStrict(u[start:i])
		if err != nil {
			return nil, fmt.Errorf("value: multi-string entry %d: %w: %v", len(out), types.ErrText, err)
		}
		out = append(out, s)
		start = i + 1
	}
	return out, nil
}
