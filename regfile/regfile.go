package regfile

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/regkit/pkg/types"
	"github.com/joshuapare/regkit/value"
)

// Format selects the .reg dialect to emit.
type Format int

const (
	// Version5 is the "Windows Registry Editor Version 5.00" dialect,
	// written as UTF-16LE with a byte order mark.
	Version5 Format = iota
	// Regedit4 is the legacy "REGEDIT4" dialect, written as Windows-1252.
	Regedit4
)

const (
	version5Header = "Windows Registry Editor Version 5.00"
	regedit4Header = "REGEDIT4"
	crlf           = "\r\n"
)

// Value is one named value under a key. An empty Name is the key's default
// value, rendered as "@=".
type Value struct {
	Name string
	Data value.Data
}

// Key is one [path] section of a .reg file with its values in emission
// order.
type Key struct {
	Path   string
	Values []Value
}

// Export writes the keys as a .reg file in the requested format. The text is
// assembled first and transcoded in one pass, so nothing is written on
// error.
func Export(w io.Writer, keys []Key, format Format) error {
	var buf bytes.Buffer
	switch format {
	case Version5:
		buf.WriteString(version5Header)
	case Regedit4:
		buf.WriteString(regedit4Header)
	default:
		return fmt.Errorf("regfile: unknown format %d", format)
	}
	buf.WriteString(crlf)

	for _, k := range keys {
		buf.WriteString(crlf)
		buf.WriteString("[")
		buf.WriteString(k.Path)
		buf.WriteString("]" + crlf)
		for _, v := range k.Values {
			emitValue(&buf, v)
		}
	}

	tw := transform.NewWriter(w, formatEncoder(format).NewEncoder())
	if _, err := tw.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("regfile: write: %w", err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("regfile: write: %w", err)
	}
	return nil
}

func formatEncoder(format Format) encoding.Encoding {
	if format == Regedit4 {
		return charmap.Windows1252
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
}

func emitValue(buf *bytes.Buffer, v Value) {
	if v.Name == "" {
		buf.WriteString("@=")
	} else {
		buf.WriteString(`"`)
		buf.WriteString(escapeString(v.Name))
		buf.WriteString(`"=`)
	}

	switch d := v.Data.(type) {
	case value.String:
		buf.WriteString(`"`)
		buf.WriteString(escapeString(string(d)))
		buf.WriteString(`"`)
	case value.DWORD:
		fmt.Fprintf(buf, "dword:%08x", uint32(d))
	default:
		t, data := value.Encode(v.Data)
		buf.WriteString(hexPrefix(t))
		buf.WriteString(formatHex(data))
	}
	buf.WriteString(crlf)
}

// hexPrefix picks the typed hex prefix regedit uses for everything that has
// no inline syntax. Plain REG_BINARY is the bare "hex:" form.
func hexPrefix(t types.RegType) string {
	if t == types.REG_BINARY {
		return "hex:"
	}
	return fmt.Sprintf("hex(%x):", uint32(t))
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

func formatHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ",")
}
