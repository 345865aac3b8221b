//go:build windows

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/key"
	"github.com/joshuapare/regkit/regfile"
)

var exportLegacy bool

func init() {
	cmd := newExportCmd()
	cmd.Flags().BoolVar(&exportLegacy, "regedit4", false, "Write the legacy REGEDIT4 dialect")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path> <file>",
		Short: "Export a registry subtree to a .reg file",
		Long: `The export command walks a registry key and all of its subkeys and
writes them as a .reg file regedit can import.

Example:
  regctl export "HKCU\Software\Vendor" vendor.reg
  regctl export "HKCU\Software\Vendor" vendor.reg --regedit4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	keyPath := args[0]
	outPath := args[1]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := key.OpenPath(keyPath, key.Read)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	keys, err := collectTree(k)
	if err != nil {
		return err
	}

	format := regfile.Version5
	if exportLegacy {
		format = regfile.Regedit4
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := regfile.Export(f, keys, format); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	printInfo("Exported %d key(s) to %s\n", len(keys), outPath)
	return nil
}

// collectTree gathers the key and its subtree depth-first, the order
// regedit exports in.
func collectTree(k *key.Key) ([]regfile.Key, error) {
	entry := regfile.Key{Path: k.Path()}

	vit, err := k.Values()
	if err != nil {
		return nil, err
	}
	for vit.Next() {
		e := vit.Entry()
		entry.Values = append(entry.Values, regfile.Value{Name: e.Name, Data: e.Data})
	}
	if err := vit.Err(); err != nil {
		return nil, err
	}
	out := []regfile.Key{entry}

	kit, err := k.Keys()
	if err != nil {
		return nil, err
	}
	var children []string
	for kit.Next() {
		children = append(children, kit.Name())
	}
	if err := kit.Err(); err != nil {
		return nil, err
	}

	for _, name := range children {
		child, err := k.Open(name, key.Read)
		if err != nil {
			return nil, err
		}
		sub, err := collectTree(child)
		child.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}
