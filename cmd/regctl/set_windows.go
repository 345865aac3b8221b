//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/key"
)

var setCreate bool

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setCreate, "create", false, "Create the key if it does not exist")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <name> <type> <data>",
		Short: "Write a registry value",
		Long: `The set command writes a typed value under a registry key. The type is
one of: sz, expand_sz, multi_sz, dword, dword_be, qword, binary, none.

multi_sz data is a comma-separated list, binary data is hex digits.

Example:
  regctl set "HKCU\Software\Vendor" Greeting sz "hello"
  regctl set "HKCU\Software\Vendor" Retries dword 3
  regctl set "HKCU\Software\Vendor" Blob binary deadbeef --create`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	keyPath := args[0]
	valueName := args[1]
	typeName := args[2]
	raw := args[3]

	d, err := parseData(typeName, raw)
	if err != nil {
		return err
	}

	printVerbose("Opening key: %s\n", keyPath)

	var k *key.Key
	if setCreate {
		h, rest, perr := key.ParsePath(keyPath)
		if perr != nil {
			return perr
		}
		k, err = h.Create(rest, key.Write)
	} else {
		k, err = key.OpenPath(keyPath, key.Write)
	}
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	if err := k.SetValue(valueName, d); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	printVerbose("Wrote %s (%s)\n", displayName(valueName), d.Type())
	return nil
}
