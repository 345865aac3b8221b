package value

import (
	"fmt"

	"github.com/joshuapare/regkit/internal/buf"
	"github.com/joshuapare/regkit/internal/wide"
	"github.com/joshuapare/regkit/pkg/types"
)

// Decode interprets data according to t and returns the typed form. The
// payload is copied; the result carries no reference to data.
func Decode(t types.RegType, data []byte) (Data, error) {
	switch t {
	case types.REG_NONE:
		return None{}, nil
	case types.REG_SZ:
		s, err := decodeWideNul(data)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case types.REG_EXPAND_SZ:
		s, err := decodeWideNul(data)
		if err != nil {
			return nil, err
		}
		return ExpandString(s), nil
	case types.REG_LINK:
		s, err := decodeWideNul(data)
		if err != nil {
			return nil, err
		}
		return Link(s), nil
	case types.REG_BINARY:
		return Binary(append([]byte(nil), data...)), nil
	case types.REG_DWORD:
		if len(data) != 4 {
			return nil, fmt.Errorf("value: REG_DWORD payload is %d bytes, want 4: %w", len(data), types.ErrTypeMismatch)
		}
		return DWORD(buf.U32LE(data)), nil
	case types.REG_DWORD_BE:
		if len(data) != 4 {
			return nil, fmt.Errorf("value: REG_DWORD_BE payload is %d bytes, want 4: %w", len(data), types.ErrTypeMismatch)
		}
		return DWORDBE(buf.U32BE(data)), nil
	case types.REG_QWORD:
		if len(data) != 8 {
			return nil, fmt.Errorf("value: REG_QWORD payload is %d bytes, want 8: %w", len(data), types.ErrTypeMismatch)
		}
		return QWORD(buf.U64LE(data)), nil
	case types.REG_MULTI_SZ:
		ss, err := DecodeMultiString(data)
		if err != nil {
			return nil, err
		}
		return MultiString(ss), nil
	default:
		return nil, fmt.Errorf("value: %s: %w", t, types.ErrUnsupportedType)
	}
}

// Encode is the exact inverse of Decode: it returns the wire tag and payload
// for d. The payload is freshly allocated and owned by the caller.
func Encode(d Data) (types.RegType, []byte) {
	switch v := d.(type) {
	case None:
		return types.REG_NONE, nil
	case String:
		return types.REG_SZ, wide.Bytes(wide.EncodeNul(string(v)))
	case ExpandString:
		return types.REG_EXPAND_SZ, wide.Bytes(wide.EncodeNul(string(v)))
	case Link:
		return types.REG_LINK, wide.Bytes(wide.EncodeNul(string(v)))
	case Binary:
		return types.REG_BINARY, append([]byte(nil), v...)
	case DWORD:
		b := make([]byte, 4)
		buf.PutU32(b, 0, uint32(v))
		return types.REG_DWORD, b
	case DWORDBE:
		b := make([]byte, 4)
		buf.PutU32BE(b, 0, uint32(v))
		return types.REG_DWORD_BE, b
	case QWORD:
		b := make([]byte, 8)
		buf.PutU64(b, 0, uint64(v))
		return types.REG_QWORD, b
	case MultiString:
		return types.REG_MULTI_SZ, EncodeMultiString([]string(v))
	}
	// Data is a closed set (isData is unexported); only a new in-package
	// variant missing from this switch can reach here.
	panic(fmt.Sprintf("value: unhandled Data variant %T", d))
}

// decodeWideNul decodes a NUL-terminated wide string payload. Content past
// the first terminator is dropped, a missing terminator is tolerated, and a
// trailing odd byte carries no code unit.
func decodeWideNul(data []byte) (string, error) {
	s, err := wide.DecodeStrict(wide.ClipNul(wide.Units(data)))
	if err != nil {
		return "", fmt.Errorf("value: %w: %v", types.ErrText, err)
	}
	return s, nil
}
