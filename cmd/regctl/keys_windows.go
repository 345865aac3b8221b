//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/key"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <path>",
		Short: "List the subkeys of a registry key",
		Long: `The keys command lists the direct subkeys of a registry key.

Example:
  regctl keys "HKLM\SOFTWARE\Microsoft"
  regctl keys "HKCU\Software" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	keyPath := args[0]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := key.OpenPath(keyPath, key.Read)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	it, err := k.Keys()
	if err != nil {
		return fmt.Errorf("failed to enumerate: %w", err)
	}

	var names []string
	for it.Next() {
		names = append(names, it.Name())
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("failed to enumerate: %w", err)
	}

	if jsonOut {
		return printJSON(names)
	}
	for _, name := range names {
		printInfo("%s\n", name)
	}
	return nil
}
