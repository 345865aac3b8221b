//go:build windows

package main

import (
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/value"
)

// displayName renders a value name for output, with the regedit convention
// for the default value.
func displayName(name string) string {
	if name == "" {
		return "(Default)"
	}
	return name
}

// formatData renders a typed value for terminal output.
func formatData(d value.Data) string {
	switch v := d.(type) {
	case value.None:
		return "(zero-length)"
	case value.String:
		return fmt.Sprintf("%q", string(v))
	case value.ExpandString:
		return fmt.Sprintf("%q", string(v))
	case value.Link:
		return fmt.Sprintf("-> %q", string(v))
	case value.DWORD:
		return fmt.Sprintf("%d (0x%08x)", uint32(v), uint32(v))
	case value.DWORDBE:
		return fmt.Sprintf("%d (0x%08x, big-endian)", uint32(v), uint32(v))
	case value.QWORD:
		return fmt.Sprintf("%d (0x%016x)", uint64(v), uint64(v))
	case value.MultiString:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case value.Binary:
		if len(v) > 32 {
			return fmt.Sprintf("<%d bytes>", len(v))
		}
		return fmt.Sprintf("% x", []byte(v))
	}
	return fmt.Sprintf("%v", d)
}

// jsonData renders a typed value as a JSON-friendly structure.
func jsonData(d value.Data) interface{} {
	switch v := d.(type) {
	case value.None:
		return nil
	case value.String:
		return string(v)
	case value.ExpandString:
		return string(v)
	case value.Link:
		return string(v)
	case value.DWORD:
		return uint32(v)
	case value.DWORDBE:
		return uint32(v)
	case value.QWORD:
		return uint64(v)
	case value.MultiString:
		return []string(v)
	case value.Binary:
		return fmt.Sprintf("<%d bytes>", len(v))
	}
	return fmt.Sprintf("%v", d)
}
