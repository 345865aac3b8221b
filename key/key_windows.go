//go:build windows

package key

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/internal/sizeq"
	"github.com/joshuapare/regkit/pkg/types"
	"github.com/joshuapare/regkit/value"
)

// Key is an open handle to a registry key. The zero value is not usable;
// obtain one from a Hive or from an existing Key.
type Key struct {
	handle windows.Handle
	path   string
}

// Path returns the full path this key was opened under, for diagnostics.
func (k *Key) Path() string { return k.path }

// regErr maps a Windows status to the package error taxonomy. Paths are
// embedded in the message so callers can report failures without extra
// bookkeeping.
func regErr(op, path string, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
			return fmt.Errorf("key: %s %s: %w", op, path, types.ErrNotFound)
		case windows.ERROR_ACCESS_DENIED:
			return fmt.Errorf("key: %s %s: %w", op, path, types.ErrPermissionDenied)
		}
		return types.PlatformError(fmt.Sprintf("key: %s %s", op, path), uint32(errno), err)
	}
	return fmt.Errorf("key: %s %s: %w", op, path, err)
}

func widePath(s string) (*uint16, error) {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, fmt.Errorf("key: path %q: %w: %v", s, types.ErrText, err)
	}
	return p, nil
}

// Open opens an existing subkey under the hive with the requested access.
func (h Hive) Open(subkey string, access Security) (*Key, error) {
	full := joinPath(h.String(), subkey)
	wsub, err := widePath(subkey)
	if err != nil {
		return nil, err
	}
	var handle windows.Handle
	if err := windows.RegOpenKeyEx(windows.Handle(h), wsub, 0, uint32(access), &handle); err != nil {
		return nil, regErr("open", full, err)
	}
	return &Key{handle: handle, path: full}, nil
}

// Create opens the subkey, creating it (and any missing parents) first if it
// does not exist.
func (h Hive) Create(subkey string, access Security) (*Key, error) {
	full := joinPath(h.String(), subkey)
	return createKey(windows.Handle(h), subkey, full, access)
}

// Open opens a child of an already open key.
func (k *Key) Open(subkey string, access Security) (*Key, error) {
	full := joinPath(k.path, subkey)
	wsub, err := widePath(subkey)
	if err != nil {
		return nil, err
	}
	var handle windows.Handle
	if err := windows.RegOpenKeyEx(k.handle, wsub, 0, uint32(access), &handle); err != nil {
		return nil, regErr("open", full, err)
	}
	return &Key{handle: handle, path: full}, nil
}

// Create opens a child of an already open key, creating it if needed.
func (k *Key) Create(subkey string, access Security) (*Key, error) {
	full := joinPath(k.path, subkey)
	return createKey(k.handle, subkey, full, access)
}

func createKey(parent windows.Handle, subkey, full string, access Security) (*Key, error) {
	wsub, err := widePath(subkey)
	if err != nil {
		return nil, err
	}
	var handle windows.Handle
	var disposition uint32
	if err := regCreateKeyEx(parent, wsub, 0, uint32(access), &handle, &disposition); err != nil {
		return nil, regErr("create", full, err)
	}
	return &Key{handle: handle, path: full}, nil
}

// Close releases the handle. Closing a predefined hive handle is a no-op on
// the Windows side, but keys from Open/Create must be closed.
func (k *Key) Close() error {
	if k.handle == 0 {
		return nil
	}
	err := windows.RegCloseKey(k.handle)
	k.handle = 0
	if err != nil {
		return regErr("close", k.path, err)
	}
	return nil
}

// queryRaw runs the two-call size protocol against RegQueryValueExW. The
// size query and the read race against concurrent writers, so sizeq retries
// a bounded number of times when the value grows in between.
func (k *Key) queryRaw(name string) (types.RegType, []byte, error) {
	wname, err := widePath(name)
	if err != nil {
		return 0, nil, err
	}
	var valType uint32
	raw, err := sizeq.Get(func(dst []byte) (int, error) {
		size := uint32(len(dst))
		var p *byte
		if len(dst) > 0 {
			p = &dst[0]
		}
		err := windows.RegQueryValueEx(k.handle, wname, nil, &valType, p, &size)
		switch {
		case err == nil:
			return int(size), nil
		case errors.Is(err, windows.ERROR_MORE_DATA):
			return int(size), sizeq.ErrMoreData
		}
		return 0, err
	})
	if err != nil {
		var errno syscall.Errno
		if errors.As(err, &errno) {
			return 0, nil, regErr("query value "+name, k.path, err)
		}
		return 0, nil, err
	}
	return types.RegType(valType), raw, nil
}

// Value reads the named value and decodes it into its typed representation.
// An empty name reads the key's default value.
func (k *Key) Value(name string) (value.Data, error) {
	t, raw, err := k.queryRaw(name)
	if err != nil {
		return nil, err
	}
	d, err := value.Decode(t, raw)
	if err != nil {
		return nil, fmt.Errorf("key: value %s of %s: %w", name, k.path, err)
	}
	return d, nil
}

// ValueBytes reads the named value without decoding, returning the raw data
// block and its registry type tag.
func (k *Key) ValueBytes(name string) (types.RegType, []byte, error) {
	return k.queryRaw(name)
}

// SetValue encodes the typed data and writes it under the given name. An
// empty name writes the key's default value.
func (k *Key) SetValue(name string, d value.Data) error {
	t, data := value.Encode(d)
	return k.SetValueBytes(name, t, data)
}

// SetValueBytes writes a raw data block with an explicit type tag.
func (k *Key) SetValueBytes(name string, t types.RegType, data []byte) error {
	wname, err := widePath(name)
	if err != nil {
		return err
	}
	var p *byte
	if len(data) > 0 {
		p = &data[0]
	}
	if err := regSetValueEx(k.handle, wname, uint32(t), p, uint32(len(data))); err != nil {
		return regErr("set value "+name, k.path, err)
	}
	return nil
}

// DeleteValue removes the named value from the key.
func (k *Key) DeleteValue(name string) error {
	wname, err := widePath(name)
	if err != nil {
		return err
	}
	if err := regDeleteValue(k.handle, wname); err != nil {
		return regErr("delete value "+name, k.path, err)
	}
	return nil
}

// DeleteKey removes a child key. The child must have no subkeys of its own.
func (k *Key) DeleteKey(subkey string) error {
	wsub, err := widePath(subkey)
	if err != nil {
		return err
	}
	if err := regDeleteKey(k.handle, wsub); err != nil {
		return regErr("delete", joinPath(k.path, subkey), err)
	}
	return nil
}

// DeleteTree removes a child key and everything below it.
func (k *Key) DeleteTree(subkey string) error {
	wsub, err := widePath(subkey)
	if err != nil {
		return err
	}
	if err := regDeleteTree(k.handle, wsub); err != nil {
		return regErr("delete tree", joinPath(k.path, subkey), err)
	}
	return nil
}

// OpenCurrentUser opens the HKEY_CURRENT_USER root of the user the calling
// thread is impersonating, which may differ from the CurrentUser
// pseudo-handle under impersonation.
func OpenCurrentUser(access Security) (*Key, error) {
	var handle windows.Handle
	if err := regOpenCurrentUser(uint32(access), &handle); err != nil {
		return nil, regErr("open", "HKEY_CURRENT_USER", err)
	}
	return &Key{handle: handle, path: "HKEY_CURRENT_USER"}, nil
}

// OpenPath parses a textual registry path ("HKLM\Software\Vendor") and opens
// the key it names.
func OpenPath(path string, access Security) (*Key, error) {
	h, rest, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return h.Open(rest, access)
}
