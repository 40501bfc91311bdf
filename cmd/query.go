package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/render"
)

var (
	queryFilter    string
	querySortProp  string
	queryDirection string
	queryLimit     int
)

// maxShownProperties caps how many database row properties get printed per
// result so wide databases stay readable.
const maxShownProperties = 3

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <database-id>",
	Short: "Query a database",
	Long: `Query a database, optionally filtered and sorted.

Filters use the form "PropertyName=value" or "PropertyName:type=value".
Supported types: title, rich_text (default), select, checkbox, number.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE:    runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryFilter, "filter", "f", "", `filter by property (e.g. "Status=Done" or "Done:checkbox=true")`)
	queryCmd.Flags().StringVarP(&querySortProp, "sort", "s", "", "sort by property")
	queryCmd.Flags().StringVar(&queryDirection, "direction", "desc", "sort direction (asc or desc)")
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "l", 100, "maximum results")
}

func runQuery(cmd *cobra.Command, args []string) error {
	databaseID := args[0]
	fmt.Printf("%s %s\n", color.BlueString("Querying database:"), databaseID)
	if queryFilter != "" {
		fmt.Printf("  Filter: %s\n", queryFilter)
	}
	if querySortProp != "" {
		fmt.Printf("  Sort: %s (%s)\n", querySortProp, queryDirection)
	}

	results, err := client.QueryDatabase(cmd.Context(), databaseID, queryFilter, querySortProp, queryDirection, queryLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d results found\n\n", color.GreenString("✓"), len(results))

	for i := range results {
		item := &results[i]
		id := item.ID
		if id == "" {
			id = "no-id"
		}

		fmt.Printf("  %s %s\n", color.CyanString("•"), render.Title(item))
		fmt.Printf("    ID: %s\n", render.Dim(id))

		keys := make([]string, 0, len(item.Properties))
		for key := range item.Properties {
			if key == "title" || key == "Name" {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)

		shown := 0
		for _, key := range keys {
			if shown >= maxShownProperties {
				break
			}
			if value, ok := render.Property(item.Properties[key]); ok {
				fmt.Printf("    %s: %s\n", render.Dim(key), value)
				shown++
			}
		}
	}

	return nil
}
