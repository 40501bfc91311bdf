package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/render"
)

var searchLimit int

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search for pages and databases",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE:    runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 100, "maximum results to fetch (handles pagination)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	fmt.Printf("%s %q\n", color.BlueString("Searching:"), query)

	results, err := client.Search(cmd.Context(), query, searchLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d results found\n\n", color.GreenString("✓"), len(results))

	for i := range results {
		item := &results[i]
		objectType := item.Object
		if objectType == "" {
			objectType = "unknown"
		}
		id := item.ID
		if id == "" {
			id = "no-id"
		}

		fmt.Printf("  %s [%s] %s\n", color.CyanString("•"), objectType, render.Title(item))
		fmt.Printf("    ID: %s\n", render.Dim(id))
	}

	return nil
}
