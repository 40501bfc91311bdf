package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/render"
)

var (
	updateTitle string
	updateIcon  string
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:     "update <page-id>",
	Short:   "Update a page's title or icon",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE:    runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	updateCmd.Flags().StringVarP(&updateIcon, "icon", "i", "", "new icon (emoji)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s %s\n", color.BlueString("Updating page:"), args[0])

	page, err := client.UpdatePage(cmd.Context(), args[0], updateTitle, updateIcon)
	if err != nil {
		return err
	}

	fmt.Printf("%s Page updated!\n", color.GreenString("✓"))
	fmt.Printf("  Title: %s\n", render.Title(page))
	if page.Icon != nil && page.Icon.Emoji != "" {
		fmt.Printf("  Icon: %s\n", page.Icon.Emoji)
	}

	return nil
}
