// Package wide converts between the registry's UTF-16LE wire form and host
// strings. The []uint16 code-unit slice is the tolerant internal
// representation: it is always constructible from raw bytes and preserves
// unpaired surrogate halves exactly (the registry does not guarantee
// well-formed text). Conversion to a host string is lossy by default;
// DecodeStrict fails on ill-formed input instead of substituting U+FFFD.
package wide

import (
	"fmt"
	"unicode/utf16"

	"github.com/joshuapare/regkit/internal/buf"
)

const (
	highSurrogateMin = 0xD800
	highSurrogateMax = 0xDBFF
	lowSurrogateMin  = 0xDC00
	lowSurrogateMax  = 0xDFFF
)

// Encode converts s to UTF-16LE code units without a terminator.
func Encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// EncodeNul converts s to UTF-16LE code units with a single NUL terminator.
func EncodeNul(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// Decode converts code units to a host string. Unpaired surrogate halves
// become U+FFFD; use DecodeStrict when loss must be detected.
func Decode(u []uint16) string {
	return string(utf16.Decode(u))
}

// DecodeStrict converts code units to a host string, failing on unpaired
// surrogate halves instead of substituting replacement runes.
func DecodeStrict(u []uint16) (string, error) {
	for i := 0; i < len(u); i++ {
		c := u[i]
		switch {
		case c >= highSurrogateMin && c <= highSurrogateMax:
			if i+1 >= len(u) || u[i+1] < lowSurrogateMin || u[i+1] > lowSurrogateMax {
				return "", fmt.Errorf("wide: unpaired high surrogate 0x%04X at unit %d", c, i)
			}
			i++ // consume the low half
		case c >= lowSurrogateMin && c <= lowSurrogateMax:
			return "", fmt.Errorf("wide: unpaired low surrogate 0x%04X at unit %d", c, i)
		}
	}
	return string(utf16.Decode(u)), nil
}

// Units reinterprets little-endian bytes as code units. A trailing odd byte
// carries no complete unit and is dropped.
func Units(b []byte) []uint16 {
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = buf.U16LE(b[2*i:])
	}
	return u
}

// Bytes serializes code units to little-endian bytes.
func Bytes(u []uint16) []byte {
	b := make([]byte, 2*len(u))
	for i, c := range u {
		buf.PutU16(b, 2*i, c)
	}
	return b
}

// ClipNul truncates u at the first NUL unit. Units past the terminator are
// padding the platform is free to leave behind.
func ClipNul(u []uint16) []uint16 {
	for i, c := range u {
		if c == 0 {
			return u[:i]
		}
	}
	return u
}
