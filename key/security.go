package key

// Security is the set of access rights requested when opening or creating a
// key. The values match the Windows KEY_* constants.
type Security uint32

const (
	QueryValue       Security = 0x0001
	SetValue         Security = 0x0002
	CreateSubKey     Security = 0x0004
	EnumerateSubKeys Security = 0x0008
	Notify           Security = 0x0010
	CreateLink       Security = 0x0020
	Wow6464Key       Security = 0x0100
	Wow6432Key       Security = 0x0200

	Write     Security = 0x20006
	Read      Security = 0x20019
	Execute   Security = 0x20019
	AllAccess Security = 0xF003F
)
