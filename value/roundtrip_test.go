package value

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// The round-trip law: decode(encode(d)) == d for every supported variant,
// with the one documented exception that an empty MultiString comes back
// empty (covered in multisz_test.go).

func TestProperty_RoundTripStrings(t *testing.T) {
	gen := rapid.StringMatching(`[^\x00]*`)
	rapid.Check(t, func(rt *rapid.T) {
		s := gen.Draw(rt, "s")
		for _, d := range []Data{String(s), ExpandString(s), Link(s)} {
			tag, data := Encode(d)
			back, err := Decode(tag, data)
			require.NoError(rt, err)
			require.Equal(rt, d, back)
		}
	})
}

func TestProperty_RoundTripMultiString(t *testing.T) {
	gen := rapid.SliceOfN(rapid.StringMatching(`[^\x00]+`), 1, 8)
	rapid.Check(t, func(rt *rapid.T) {
		ss := gen.Draw(rt, "ss")
		tag, data := Encode(MultiString(ss))
		back, err := Decode(tag, data)
		require.NoError(rt, err)
		require.Equal(rt, MultiString(ss), back)
	})
}

func TestProperty_RoundTripIntegers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Uint32().Draw(rt, "v")
		for _, d := range []Data{DWORD(v), DWORDBE(v)} {
			tag, data := Encode(d)
			back, err := Decode(tag, data)
			require.NoError(rt, err)
			require.Equal(rt, d, back)
		}

		q := rapid.Uint64().Draw(rt, "q")
		tag, data := Encode(QWORD(q))
		back, err := Decode(tag, data)
		require.NoError(rt, err)
		require.Equal(rt, QWORD(q), back)
	})
}

func TestProperty_RoundTripBinary(t *testing.T) {
	gen := rapid.SliceOfN(rapid.Byte(), 0, 64)
	rapid.Check(t, func(rt *rapid.T) {
		b := gen.Draw(rt, "b")
		tag, data := Encode(Binary(b))
		back, err := Decode(tag, data)
		require.NoError(rt, err)
		// Compare as raw bytes so a nil and an empty payload are the same.
		require.True(rt, bytes.Equal([]byte(b), []byte(back.(Binary))))
	})
}

func TestProperty_MultiStringDecodeNeverPanics(t *testing.T) {
	// Arbitrary byte soup must decode to a list or a typed error; in
	// particular, buffers narrower than one code unit must not index past
	// the end.
	gen := rapid.SliceOfN(rapid.Byte(), 0, 32)
	rapid.Check(t, func(rt *rapid.T) {
		data := gen.Draw(rt, "data")
		ss, err := DecodeMultiString(data)
		if err != nil {
			require.Nil(rt, ss)
		}
	})
}
