package value

import (
	"bytes"
	"errors"
	"testing"

	"github.com/joshuapare/regkit/pkg/types"
)

func TestEncodeMultiString_Block(t *testing.T) {
	// "alpha\0beta\0\0" as UTF-16LE.
	want := []byte{
		'a', 0, 'l', 0, 'p', 0, 'h', 0, 'a', 0, 0, 0,
		'b', 0, 'e', 0, 't', 0, 'a', 0, 0, 0,
		0, 0,
	}
	got := EncodeMultiString([]string{"alpha", "beta"})
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeMultiString = % x\nwant % x", got, want)
	}
}

func TestEncodeMultiString_Empty(t *testing.T) {
	// An empty list is the single list terminator, not an empty entry
	// followed by one.
	got := EncodeMultiString(nil)
	if !bytes.Equal(got, []byte{0, 0}) {
		t.Fatalf("EncodeMultiString(nil) = % x, want 00 00", got)
	}
}

func TestDecodeMultiString_Block(t *testing.T) {
	got, err := DecodeMultiString(EncodeMultiString([]string{"alpha", "beta"}))
	if err != nil {
		t.Fatalf("DecodeMultiString() error: %v", err)
	}
	if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Fatalf("DecodeMultiString = %q", got)
	}
}

func TestDecodeMultiString_DegenerateBuffers(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"zero-length buffer", nil},
		{"zero-length non-nil buffer", []byte{}},
		{"single odd byte", []byte{0x41}},
		{"single terminator", []byte{0, 0}},
		{"double terminator", []byte{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMultiString(tt.data)
			if err != nil {
				t.Fatalf("DecodeMultiString() error: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("DecodeMultiString = %q, want empty list", got)
			}
		})
	}
}

func TestDecodeMultiString_TruncatedBlockRecovers(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{
			name: "missing list terminator",
			data: []byte{'a', 0, 0, 0, 'b', 0, 0, 0},
			want: []string{"a", "b"},
		},
		{
			name: "missing both terminators",
			data: []byte{'a', 0, 0, 0, 'b', 0},
			want: []string{"a", "b"},
		},
		{
			name: "bare string, no terminators at all",
			data: []byte{'h', 0, 'i', 0},
			want: []string{"hi"},
		},
		{
			name: "odd byte after final entry",
			data: []byte{'h', 0, 'i', 0, 0x7F},
			want: []string{"hi"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMultiString(tt.data)
			if err != nil {
				t.Fatalf("DecodeMultiString() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeMultiString = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("entry %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeMultiString_MalformedEntryFailsWhole(t *testing.T) {
	// First entry fine, second entry holds a lone high surrogate. The
	// decode fails as a whole; no partial list comes back.
	data := []byte{
		'o', 0, 'k', 0, 0, 0,
		0x3D, 0xD8, 0, 0,
		0, 0,
	}
	got, err := DecodeMultiString(data)
	if !errors.Is(err, types.ErrText) {
		t.Fatalf("DecodeMultiString() error = %v, want ErrText", err)
	}
	if got != nil {
		t.Fatalf("DecodeMultiString = %q, want no partial result", got)
	}
}

func TestMultiString_EmptyRoundTrip(t *testing.T) {
	// MultiString(nil) must round-trip to an empty list, never to a list
	// holding one empty string.
	tag, data := Encode(MultiString(nil))
	back, err := Decode(tag, data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	ms, ok := back.(MultiString)
	if !ok {
		t.Fatalf("Decode() = %#v, want MultiString", back)
	}
	if len(ms) != 0 {
		t.Fatalf("round-trip of empty list = %q, want empty", ms)
	}
}
