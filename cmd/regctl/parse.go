package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/regkit/value"
)

// parseData builds a typed value from the CLI's type and data arguments.
func parseData(typeName, raw string) (value.Data, error) {
	switch strings.ToLower(typeName) {
	case "sz", "string":
		return value.String(raw), nil
	case "expand_sz", "expand":
		return value.ExpandString(raw), nil
	case "multi_sz", "multi":
		if raw == "" {
			return value.MultiString(nil), nil
		}
		return value.MultiString(strings.Split(raw, ",")), nil
	case "dword":
		n, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid dword %q: %w", raw, err)
		}
		return value.DWORD(n), nil
	case "dword_be":
		n, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid dword_be %q: %w", raw, err)
		}
		return value.DWORDBE(n), nil
	case "qword":
		n, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid qword %q: %w", raw, err)
		}
		return value.QWORD(n), nil
	case "binary", "hex":
		b, err := hex.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid hex data %q: %w", raw, err)
		}
		return value.Binary(b), nil
	case "none":
		return value.None{}, nil
	}
	return nil, fmt.Errorf("unknown value type %q", typeName)
}
