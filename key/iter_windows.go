//go:build windows

package key

import (
	"errors"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/internal/wide"
	"github.com/joshuapare/regkit/pkg/types"
	"github.com/joshuapare/regkit/value"
)

// keyInfo holds the sizing data RegQueryInfoKey reports, used to pre-size
// enumeration buffers.
type keyInfo struct {
	subkeyCount     uint32
	maxSubkeyLen    uint32
	valueCount      uint32
	maxValueNameLen uint32
	maxValueLen     uint32
}

func (k *Key) info() (keyInfo, error) {
	var ki keyInfo
	err := windows.RegQueryInfoKey(k.handle, nil, nil, nil,
		&ki.subkeyCount, &ki.maxSubkeyLen, nil,
		&ki.valueCount, &ki.maxValueNameLen, &ki.maxValueLen, nil, nil)
	if err != nil {
		return keyInfo{}, regErr("query info", k.path, err)
	}
	return ki, nil
}

// SubkeyCount reports how many direct children the key has.
func (k *Key) SubkeyCount() (int, error) {
	ki, err := k.info()
	if err != nil {
		return 0, err
	}
	return int(ki.subkeyCount), nil
}

// ValueCount reports how many values the key holds.
func (k *Key) ValueCount() (int, error) {
	ki, err := k.info()
	if err != nil {
		return 0, err
	}
	return int(ki.valueCount), nil
}

// KeyIter enumerates the names of a key's direct children. Usage follows the
// bufio.Scanner pattern: Next until it returns false, then check Err.
type KeyIter struct {
	key   *Key
	index uint32
	buf   []uint16
	name  string
	err   error
	done  bool
}

// Keys returns an iterator over the key's subkey names. The name buffer is
// pre-sized from RegQueryInfoKey and grown if a concurrent writer adds a
// longer name mid-iteration.
func (k *Key) Keys() (*KeyIter, error) {
	ki, err := k.info()
	if err != nil {
		return nil, err
	}
	return &KeyIter{key: k, buf: make([]uint16, ki.maxSubkeyLen+1)}, nil
}

// Next advances to the next subkey name. It returns false at the end of the
// enumeration or on error.
func (it *KeyIter) Next() bool {
	if it.done {
		return false
	}
	for {
		nameLen := uint32(len(it.buf))
		err := windows.RegEnumKeyEx(it.key.handle, it.index, &it.buf[0], &nameLen,
			nil, nil, nil, nil)
		switch {
		case err == nil:
			it.name = wide.Decode(it.buf[:nameLen])
			it.index++
			return true
		case errors.Is(err, windows.ERROR_NO_MORE_ITEMS):
			it.done = true
			return false
		case errors.Is(err, windows.ERROR_MORE_DATA):
			it.buf = make([]uint16, len(it.buf)*2)
		default:
			it.err = regErr("enum keys", it.key.path, err)
			it.done = true
			return false
		}
	}
}

// Name returns the subkey name at the current position.
func (it *KeyIter) Name() string { return it.name }

// Err returns the error that stopped iteration, if any.
func (it *KeyIter) Err() error { return it.err }

// ValueEntry is one decoded value yielded by a ValueIter.
type ValueEntry struct {
	Name string
	Data value.Data
}

// ValueIter enumerates a key's values, decoding each into its typed form.
type ValueIter struct {
	key     *Key
	index   uint32
	nameBuf []uint16
	dataBuf []byte
	entry   ValueEntry
	err     error
	done    bool
}

// Values returns an iterator over the key's values. Both the name and the
// data buffers are pre-sized from RegQueryInfoKey.
func (k *Key) Values() (*ValueIter, error) {
	ki, err := k.info()
	if err != nil {
		return nil, err
	}
	dataLen := ki.maxValueLen
	if dataLen == 0 {
		dataLen = 1
	}
	return &ValueIter{
		key:     k,
		nameBuf: make([]uint16, ki.maxValueNameLen+1),
		dataBuf: make([]byte, dataLen),
	}, nil
}

// Next advances to the next value. It returns false at the end of the
// enumeration or on error; a value whose payload cannot be decoded stops
// the iteration with that error.
func (it *ValueIter) Next() bool {
	if it.done {
		return false
	}
	for {
		nameLen := uint32(len(it.nameBuf))
		dataLen := uint32(len(it.dataBuf))
		var valType uint32
		err := regEnumValue(it.key.handle, it.index, &it.nameBuf[0], &nameLen,
			&valType, &it.dataBuf[0], &dataLen)
		switch {
		case err == nil:
			name := wide.Decode(it.nameBuf[:nameLen])
			d, derr := value.Decode(types.RegType(valType), it.dataBuf[:dataLen])
			if derr != nil {
				it.err = derr
				it.done = true
				return false
			}
			it.entry = ValueEntry{Name: name, Data: d}
			it.index++
			return true
		case errors.Is(err, windows.ERROR_MORE_DATA):
			it.nameBuf = make([]uint16, len(it.nameBuf)*2)
			it.dataBuf = make([]byte, len(it.dataBuf)*2)
		case errors.Is(err, windows.ERROR_NO_MORE_ITEMS):
			it.done = true
			return false
		default:
			it.err = regErr("enum values", it.key.path, err)
			it.done = true
			return false
		}
	}
}

// Entry returns the value at the current position.
func (it *ValueIter) Entry() ValueEntry { return it.entry }

// Err returns the error that stopped iteration, if any.
func (it *ValueIter) Err() error { return it.err }
