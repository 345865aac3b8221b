package regfile

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/regkit/value"
)

func decodeUTF16LE(t *testing.T, raw []byte) string {
	t.Helper()
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		t.Fatalf("decoding UTF-16LE output: %v", err)
	}
	return string(out)
}

func TestExport_Version5(t *testing.T) {
	keys := []Key{
		{
			Path: `HKEY_CURRENT_USER\Software\Vendor`,
			Values: []Value{
				{Name: "", Data: value.String("default")},
				{Name: "answer", Data: value.DWORD(42)},
				{Name: "blob", Data: value.Binary{0xde, 0xad, 0xbe, 0xef}},
				{Name: "path", Data: value.ExpandString("%TMP%")},
				{Name: "langs", Data: value.MultiString{"a", "b"}},
				{Name: "big", Data: value.QWORD(1)},
			},
		},
		{
			Path: `HKEY_CURRENT_USER\Software\Vendor\Sub`,
		},
	}

	var out bytes.Buffer
	if err := Export(&out, keys, Version5); err != nil {
		t.Fatalf("Export: %v", err)
	}

	raw := out.Bytes()
	if len(raw) < 2 || raw[0] != 0xFF || raw[1] != 0xFE {
		t.Fatalf("output does not start with UTF-16LE BOM: % x", raw[:2])
	}

	got := decodeUTF16LE(t, raw)
	want := strings.Join([]string{
		"Windows Registry Editor Version 5.00",
		"",
		`[HKEY_CURRENT_USER\Software\Vendor]`,
		`@="default"`,
		`"answer"=dword:0000002a`,
		`"blob"=hex:de,ad,be,ef`,
		`"path"=hex(2):25,00,54,00,4d,00,50,00,25,00,00,00`,
		`"langs"=hex(7):61,00,00,00,62,00,00,00,00,00`,
		`"big"=hex(b):01,00,00,00,00,00,00,00`,
		"",
		`[HKEY_CURRENT_USER\Software\Vendor\Sub]`,
		"",
	}, "\r\n")
	if got != want {
		t.Errorf("decoded output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExport_Regedit4(t *testing.T) {
	keys := []Key{
		{
			Path: `HKEY_LOCAL_MACHINE\Software\Caf`,
			Values: []Value{
				{Name: "place", Data: value.String("café")},
			},
		},
	}

	var out bytes.Buffer
	if err := Export(&out, keys, Regedit4); err != nil {
		t.Fatalf("Export: %v", err)
	}

	raw := out.String()
	if !strings.HasPrefix(raw, "REGEDIT4\r\n") {
		t.Errorf("missing REGEDIT4 header, got %q", raw[:20])
	}
	// Windows-1252 encodes é as the single byte 0xE9.
	if !strings.Contains(raw, "\"place\"=\"caf\xe9\"") {
		t.Errorf("expected Windows-1252 encoded value line, got %q", raw)
	}
}

func TestExport_Escaping(t *testing.T) {
	keys := []Key{
		{
			Path: `HKCU\Test`,
			Values: []Value{
				{Name: `quoted "name"`, Data: value.String(`C:\Program Files\x`)},
			},
		},
	}

	var out bytes.Buffer
	if err := Export(&out, keys, Version5); err != nil {
		t.Fatalf("Export: %v", err)
	}
	got := decodeUTF16LE(t, out.Bytes())
	wantLine := `"quoted \"name\""="C:\\Program Files\\x"`
	if !strings.Contains(got, wantLine) {
		t.Errorf("escaped line %q not found in output:\n%s", wantLine, got)
	}
}

func TestExport_EmptyAndSpecialValues(t *testing.T) {
	keys := []Key{
		{
			Path: `HKCU\Test`,
			Values: []Value{
				{Name: "none", Data: value.None{}},
				{Name: "empty-multi", Data: value.MultiString(nil)},
				{Name: "empty-bin", Data: value.Binary{}},
				{Name: "link", Data: value.Link("target")},
			},
		},
	}

	var out bytes.Buffer
	if err := Export(&out, keys, Version5); err != nil {
		t.Fatalf("Export: %v", err)
	}
	got := decodeUTF16LE(t, out.Bytes())
	for _, wantLine := range []string{
		`"none"=hex(0):`,
		`"empty-multi"=hex(7):00,00`,
		`"empty-bin"=hex:`,
		`"link"=hex(6):74,00,61,00,72,00,67,00,65,00,74,00,00,00`,
	} {
		if !strings.Contains(got, wantLine) {
			t.Errorf("line %q not found in output:\n%s", wantLine, got)
		}
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	if err := Export(&bytes.Buffer{}, nil, Format(99)); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
