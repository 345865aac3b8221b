// Package regfile renders registry keys and their typed values as .reg
// files, the text format regedit.exe imports and exports. Output can target
// the modern Version 5.00 dialect (UTF-16LE with BOM) or the legacy
// REGEDIT4 dialect (Windows-1252).
package regfile
