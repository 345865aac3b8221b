// Package value implements the typed registry value codec: the conversion
// between the registry's untyped (type tag, byte payload) pairs and the
// closed set of typed Data variants.
//
// The tag and the payload travel together through exactly one boundary,
// Decode and Encode; nothing inside the package reinterprets a payload under
// a different tag. The codec is pure and stateless: every call consumes
// owned inputs and produces owned outputs, so concurrent use needs no
// synchronization.
//
// Failures are typed (see pkg/types): a mismatched payload shape is
// ErrTypeMismatch, an unconvertible wide string is ErrText, a reserved or
// unknown tag is ErrUnsupportedType. The codec never substitutes a default
// value for a failed decode — a defaulted registry entry would be
// indistinguishable from a legitimately absent one.
package value
