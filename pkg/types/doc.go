// Package types defines the registry value type tags and the typed error
// taxonomy shared by the value codec and the key-handle layer.
package types
