package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddleball/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the variants",
	Long:  `Shows every registered paddleball variant.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return nil
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Title", "Behavior")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "-----", "--------")

	for _, g := range games {
		desc := ""
		if v, err := resolveVariant([]string{g.ID}); err == nil {
			desc = v.Describe()
		}
		fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, g.ID, g.Title, desc)
	}

	fmt.Println()
	fmt.Println("Run 'paddleball play <id>' to play a variant.")
	return nil
}
