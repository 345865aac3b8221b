//go:build windows

package key

import (
	"golang.org/x/sys/windows"
)

// Load mounts a hive file as a new subkey of this root. Only LocalMachine
// and Users accept loads, and the caller needs SeBackupPrivilege and
// SeRestorePrivilege enabled.
func (h Hive) Load(subkey, file string) error {
	wsub, err := widePath(subkey)
	if err != nil {
		return err
	}
	wfile, err := widePath(file)
	if err != nil {
		return err
	}
	if err := regLoadKey(windows.Handle(h), wsub, wfile); err != nil {
		return regErr("load "+file+" at", joinPath(h.String(), subkey), err)
	}
	return nil
}

// Unload detaches a hive previously mounted with Load. All handles into the
// mounted tree must be closed first.
func (h Hive) Unload(subkey string) error {
	wsub, err := widePath(subkey)
	if err != nil {
		return err
	}
	if err := regUnLoadKey(windows.Handle(h), wsub); err != nil {
		return regErr("unload", joinPath(h.String(), subkey), err)
	}
	return nil
}

// LoadAppKey opens a hive file privately, without attaching it to the
// registry namespace. Unlike Load it needs no special privileges; the hive
// is unloaded when the last handle into it is closed.
func LoadAppKey(file string, access Security) (*Key, error) {
	wfile, err := widePath(file)
	if err != nil {
		return nil, err
	}
	var handle windows.Handle
	if err := regLoadAppKey(wfile, &handle, uint32(access), 0); err != nil {
		return nil, regErr("load app key", file, err)
	}
	return &Key{handle: handle, path: file}, nil
}
