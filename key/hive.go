package key

import "fmt"

// Hive identifies one of the predefined registry roots. The values are the
// well-known HKEY_* pseudo-handles.
type Hive uintptr

const (
	ClassesRoot              Hive = 0x80000000
	CurrentUser              Hive = 0x80000001
	LocalMachine             Hive = 0x80000002
	Users                    Hive = 0x80000003
	PerformanceData          Hive = 0x80000004
	CurrentConfig            Hive = 0x80000005
	CurrentUserLocalSettings Hive = 0x80000007
)

func (h Hive) String() string {
	switch h {
	case ClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case Users:
		return "HKEY_USERS"
	case PerformanceData:
		return "HKEY_PERFORMANCE_DATA"
	case CurrentConfig:
		return "HKEY_CURRENT_CONFIG"
	case CurrentUserLocalSettings:
		return "HKEY_CURRENT_USER_LOCAL_SETTINGS"
	default:
		return fmt.Sprintf("HKEY(0x%X)", uintptr(h))
	}
}
