//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/key"
)

var deleteTree bool

func init() {
	deleteValueCmd := newDeleteValueCmd()
	rootCmd.AddCommand(deleteValueCmd)

	deleteKeyCmd := newDeleteKeyCmd()
	deleteKeyCmd.Flags().BoolVar(&deleteTree, "tree", false, "Delete the key and everything below it")
	rootCmd.AddCommand(deleteKeyCmd)
}

func newDeleteValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-value <path> <name>",
		Short: "Delete a value from a registry key",
		Long: `The delete-value command removes a single value from a registry key.

Example:
  regctl delete-value "HKCU\Software\Vendor" Greeting`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args)
		},
	}
}

func runDeleteValue(args []string) error {
	keyPath := args[0]
	valueName := args[1]

	k, err := key.OpenPath(keyPath, key.Write)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	if err := k.DeleteValue(valueName); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	printVerbose("Deleted %s\n", displayName(valueName))
	return nil
}

func newDeleteKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-key <path>",
		Short: "Delete a registry key",
		Long: `The delete-key command removes a registry key. Without --tree the key
must have no subkeys.

Example:
  regctl delete-key "HKCU\Software\Vendor\Stale"
  regctl delete-key "HKCU\Software\Vendor" --tree`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(args)
		},
	}
}

func runDeleteKey(args []string) error {
	h, rest, err := key.ParsePath(args[0])
	if err != nil {
		return err
	}
	if rest == "" {
		return fmt.Errorf("refusing to delete a registry root")
	}

	parent, err := h.Open("", key.Write)
	if err != nil {
		return fmt.Errorf("failed to open root: %w", err)
	}
	defer parent.Close()

	if deleteTree {
		err = parent.DeleteTree(rest)
	} else {
		err = parent.DeleteKey(rest)
	}
	if err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	printVerbose("Deleted %s\n", args[0])
	return nil
}
