// Package key provides handles to live Windows Registry keys: opening and
// creating keys under the predefined hives, reading and writing typed values
// through the value codec, enumerating children, and loading hive files.
//
// The Hive, Security and path-parsing definitions are portable; everything
// touching a real handle requires Windows.
package key
