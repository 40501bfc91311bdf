package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/render"
)

var (
	createParent  string
	createTitle   string
	createContent string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a new page",
	PreRunE: initializeClient,
	RunE:    runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createParent, "parent", "p", "", "parent page ID")
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "page title")
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "page content (optional)")
	createCmd.MarkFlagRequired("parent")
	createCmd.MarkFlagRequired("title")
}

func runCreate(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s %q\n", color.BlueString("Creating page:"), createTitle)

	page, err := client.CreatePage(cmd.Context(), createParent, createTitle, createContent)
	if err != nil {
		return err
	}

	fmt.Printf("%s Page created!\n", color.GreenString("✓"))
	id := page.ID
	if id == "" {
		id = "unknown"
	}
	fmt.Printf("  ID: %s\n", id)
	if page.URL != "" {
		fmt.Printf("  URL: %s\n", render.Dim(page.URL))
	}

	return nil
}
