//go:build windows

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/key"
)

var valuesShowType bool

func init() {
	cmd := newValuesCmd()
	cmd.Flags().BoolVar(&valuesShowType, "show-type", true, "Show registry type")
	rootCmd.AddCommand(cmd)
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <path>",
		Short: "List all values at a registry key",
		Long: `The values command lists every value at a registry key with its type
and decoded data.

Example:
  regctl values "HKCU\Environment"
  regctl values "HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

func runValues(args []string) error {
	keyPath := args[0]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := key.OpenPath(keyPath, key.Read)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	it, err := k.Values()
	if err != nil {
		return fmt.Errorf("failed to enumerate: %w", err)
	}

	var entries []key.ValueEntry
	for it.Next() {
		entries = append(entries, it.Entry())
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("failed to enumerate: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	if jsonOut {
		result := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			if valuesShowType {
				result[displayName(e.Name)] = map[string]interface{}{
					"type": e.Data.Type().String(),
					"data": jsonData(e.Data),
				}
			} else {
				result[displayName(e.Name)] = jsonData(e.Data)
			}
		}
		return printJSON(result)
	}

	for _, e := range entries {
		if valuesShowType {
			printInfo("%-30s %-14s %s\n", displayName(e.Name), e.Data.Type(), formatData(e.Data))
		} else {
			printInfo("%-30s %s\n", displayName(e.Name), formatData(e.Data))
		}
	}
	return nil
}
