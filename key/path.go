package key

import (
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/pkg/types"
)

// hiveNames maps the spellings accepted in textual paths to their roots.
// Both the HKEY_* long forms and the usual regedit abbreviations work.
var hiveNames = map[string]Hive{
	"HKEY_CLASSES_ROOT":                ClassesRoot,
	"HKCR":                             ClassesRoot,
	"HKEY_CURRENT_USER":                CurrentUser,
	"HKCU":                             CurrentUser,
	"HKEY_LOCAL_MACHINE":               LocalMachine,
	"HKLM":                             LocalMachine,
	"HKEY_USERS":                       Users,
	"HKU":                              Users,
	"HKEY_PERFORMANCE_DATA":            PerformanceData,
	"HKEY_CURRENT_CONFIG":              CurrentConfig,
	"HKCC":                             CurrentConfig,
	"HKEY_CURRENT_USER_LOCAL_SETTINGS": CurrentUserLocalSettings,
}

// ParsePath splits a Windows-style registry path ("HKLM\Software\Vendor")
// into its root hive and the remaining subkey path. Forward slashes are
// accepted as separators; the subkey part may be empty (the root itself).
func ParsePath(path string) (Hive, string, error) {
	norm := strings.ReplaceAll(path, "/", `\`)
	norm = strings.Trim(norm, `\`)
	if norm == "" {
		return 0, "", fmt.Errorf("key: empty path: %w", types.ErrNotFound)
	}
	root, rest, _ := strings.Cut(norm, `\`)
	h, ok := hiveNames[strings.ToUpper(root)]
	if !ok {
		return 0, "", fmt.Errorf("key: unknown root %q: %w", root, types.ErrNotFound)
	}
	return h, rest, nil
}

func joinPath(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, `\`)
}
