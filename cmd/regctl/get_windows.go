//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/key"
)

var getShowType bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Get a specific registry value",
		Long: `The get command retrieves and displays a value from a registry key.
Pass an empty name ("") to read the key's default value.

Example:
  regctl get "HKCU\Environment" TEMP
  regctl get "HKLM\SOFTWARE\Microsoft\Windows NT\CurrentVersion" ProductName --type`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	keyPath := args[0]
	valueName := args[1]

	printVerbose("Opening key: %s\n", keyPath)

	k, err := key.OpenPath(keyPath, key.Read)
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer k.Close()

	d, err := k.Value(valueName)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"name": displayName(valueName),
			"type": d.Type().String(),
			"data": jsonData(d),
		})
	}

	if getShowType {
		printInfo("%s (%s) = %s\n", displayName(valueName), d.Type(), formatData(d))
	} else {
		printInfo("%s\n", formatData(d))
	}
	return nil
}
