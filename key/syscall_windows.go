//go:build windows

package key

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Procedures that golang.org/x/sys/windows does not export are loaded
// lazily from advapi32 and called through SyscallN.
var (
	advapi32 = windows.NewLazySystemDLL("advapi32.dll")

	procRegCreateKeyExW    = advapi32.NewProc("RegCreateKeyExW")
	procRegSetValueExW     = advapi32.NewProc("RegSetValueExW")
	procRegDeleteKeyW      = advapi32.NewProc("RegDeleteKeyW")
	procRegDeleteTreeW     = advapi32.NewProc("RegDeleteTreeW")
	procRegDeleteValueW    = advapi32.NewProc("RegDeleteValueW")
	procRegEnumValueW      = advapi32.NewProc("RegEnumValueW")
	procRegOpenCurrentUser = advapi32.NewProc("RegOpenCurrentUser")
	procRegLoadKeyW        = advapi32.NewProc("RegLoadKeyW")
	procRegUnLoadKeyW      = advapi32.NewProc("RegUnLoadKeyW")
	procRegLoadAppKeyW     = advapi32.NewProc("RegLoadAppKeyW")
)

func regStatus(r0 uintptr) error {
	if r0 != 0 {
		return syscall.Errno(r0)
	}
	return nil
}

func regCreateKeyEx(parent windows.Handle, subkey *uint16, options uint32, access uint32, result *windows.Handle, disposition *uint32) error {
	r0, _, _ := syscall.SyscallN(procRegCreateKeyExW.Addr(),
		uintptr(parent),
		uintptr(unsafe.Pointer(subkey)),
		0, // reserved
		0, // class
		uintptr(options),
		uintptr(access),
		0, // security attributes
		uintptr(unsafe.Pointer(result)),
		uintptr(unsafe.Pointer(disposition)))
	return regStatus(r0)
}

func regSetValueEx(k windows.Handle, name *uint16, valType uint32, data *byte, size uint32) error {
	r0, _, _ := syscall.SyscallN(procRegSetValueExW.Addr(),
		uintptr(k),
		uintptr(unsafe.Pointer(name)),
		0, // reserved
		uintptr(valType),
		uintptr(unsafe.Pointer(data)),
		uintptr(size))
	return regStatus(r0)
}

func regDeleteKey(k windows.Handle, subkey *uint16) error {
	r0, _, _ := syscall.SyscallN(procRegDeleteKeyW.Addr(),
		uintptr(k), uintptr(unsafe.Pointer(subkey)))
	return regStatus(r0)
}

func regDeleteTree(k windows.Handle, subkey *uint16) error {
	r0, _, _ := syscall.SyscallN(procRegDeleteTreeW.Addr(),
		uintptr(k), uintptr(unsafe.Pointer(subkey)))
	return regStatus(r0)
}

func regDeleteValue(k windows.Handle, name *uint16) error {
	r0, _, _ := syscall.SyscallN(procRegDeleteValueW.Addr(),
		uintptr(k), uintptr(unsafe.Pointer(name)))
	return regStatus(r0)
}

func regEnumValue(k windows.Handle, index uint32, name *uint16, nameLen *uint32, valType *uint32, data *byte, dataLen *uint32) error {
	r0, _, _ := syscall.SyscallN(procRegEnumValueW.Addr(),
		uintptr(k),
		uintptr(index),
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(nameLen)),
		0, // reserved
		uintptr(unsafe.Pointer(valType)),
		uintptr(unsafe.Pointer(data)),
		uintptr(unsafe.Pointer(dataLen)))
	return regStatus(r0)
}

func regOpenCurrentUser(access uint32, result *windows.Handle) error {
	r0, _, _ := syscall.SyscallN(procRegOpenCurrentUser.Addr(),
		uintptr(access), uintptr(unsafe.Pointer(result)))
	return regStatus(r0)
}

func regLoadKey(k windows.Handle, subkey, file *uint16) error {
	r0, _, _ := syscall.SyscallN(procRegLoadKeyW.Addr(),
		uintptr(k), uintptr(unsafe.Pointer(subkey)), uintptr(unsafe.Pointer(file)))
	return regStatus(r0)
}

func regUnLoadKey(k windows.Handle, subkey *uint16) error {
	r0, _, _ := syscall.SyscallN(procRegUnLoadKeyW.Addr(),
		uintptr(k), uintptr(unsafe.Pointer(subkey)))
	return regStatus(r0)
}

func regLoadAppKey(file *uint16, result *windows.Handle, access uint32, options uint32) error {
	r0, _, _ := syscall.SyscallN(procRegLoadAppKeyW.Addr(),
		uintptr(unsafe.Pointer(file)),
		uintptr(unsafe.Pointer(result)),
		uintptr(access),
		uintptr(options),
		0) // reserved
	return regStatus(r0)
}
