package value

import "github.com/joshuapare/regkit/pkg/types"

// Data is the closed set of typed registry values. Every variant maps to
// exactly one RegType and back.
type Data interface {
	Type() types.RegType
	isData()
}

// None is a REG_NONE value: a tag with no payload.
type None struct{}

// String is a REG_SZ value.
type String string

// ExpandString is a REG_EXPAND_SZ value. Environment references ("%PATH%")
// are carried unexpanded; expansion is the caller's responsibility.
type ExpandString string

// Binary is a REG_BINARY value.
type Binary []byte

// DWORD is a REG_DWORD value (32-bit, little-endian on the wire).
type DWORD uint32

// DWORDBE is a REG_DWORD_BIG_ENDIAN value.
type DWORDBE uint32

// QWORD is a REG_QWORD value (64-bit, little-endian on the wire).
type QWORD uint64

// Link is a REG_LINK symbolic link target.
type Link string

// MultiString is a REG_MULTI_SZ ordered list of strings.
type MultiString []string

func (None) Type() types.RegType        { return types.REG_NONE }
func (String) Type() types.RegType      { return types.REG_SZ }
func (ExpandString) Type() types.RegType { return types.REG_EXPAND_SZ }
func (Binary) Type() types.RegType      { return types.REG_BINARY }
func (DWORD) Type() types.RegType       { return types.REG_DWORD }
func (DWORDBE) Type() types.RegType     { return types.REG_DWORD_BE }
func (QWORD) Type() types.RegType       { return types.REG_QWORD }
func (Link) Type() types.RegType        { return types.REG_LINK }
func (MultiString) Type() types.RegType { return types.REG_MULTI_SZ }

func (None) isData()        {}
func (String) isData()      {}
func (ExpandString) isData() {}
func (Binary) isData()      {}
func (DWORD) isData()       {}
func (DWORDBE) isData()     {}
func (QWORD) isData()       {}
func (Link) isData()        {}
func (MultiString) isData() {}
