package types

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound    ErrKind = iota // queried key/value name absent
	ErrKindType                       // buffer shape disagrees with the requested variant
	ErrKindUnsupported                // recognized but unsupported value tag
	ErrKindText                       // wide-to-host text conversion failed
	ErrKindPermission                 // access denied by the platform
	ErrKindPlatform                   // raw platform status we could not interpret further
	ErrKindBufferSize                 // legacy buffer sizing failures (no longer raised)
)

// Error is a typed error with an optional underlying cause. Code carries the
// raw platform status for ErrKindPlatform-adjacent failures, zero otherwise.
type Error struct {
	Kind ErrKind
	Msg  string
	Code uint32
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (status 0x%X)", msg, e.Code)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality, so detailed errors wrapped with %w match the
// bare sentinels below under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels commonly returned by the value codec and key-handle layer.
var (
	// ErrNotFound indicates a missing key/value name.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrTypeMismatch indicates the payload shape doesn't match the value tag.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "registry value has different type"}
	// ErrUnsupportedType indicates a tag outside the supported set (reserved
	// resource tags, or garbage). The payload is never reinterpreted as binary.
	ErrUnsupportedType = &Error{Kind: ErrKindUnsupported, Msg: "unsupported registry value type"}
	// ErrText indicates wide text could not be converted losslessly to a
	// host string (unpaired surrogate halves).
	ErrText = &Error{Kind: ErrKindText, Msg: "invalid wide text"}
	// ErrPermissionDenied indicates the platform refused access.
	ErrPermissionDenied = &Error{Kind: ErrKindPermission, Msg: "permission denied"}

	// ErrBufferSize reported a failed size probe before probing moved into
	// the retrying query helper.
	//
	// Deprecated: declared only for callers that still match on it; no code
	// path constructs it.
	ErrBufferSize = &Error{Kind: ErrKindBufferSize, Msg: "could not determine required buffer size"}
	// ErrInvalidBufferSize reported odd-length wide-string payloads, which
	// now decode tolerantly (the trailing odd byte is dropped).
	//
	// Deprecated: declared only for callers that still match on it; no code
	// path constructs it.
	ErrInvalidBufferSize = &Error{Kind: ErrKindBufferSize, Msg: "invalid buffer size for UTF-16 string"}
)

// PlatformError wraps a raw platform status code that has no more specific
// mapping.
func PlatformError(msg string, code uint32, err error) *Error {
	return &Error{Kind: ErrKindPlatform, Msg: msg, Code: code, Err: err}
}
