package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/render"
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:     "read <page-id>",
	Short:   "Read a page's content",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE:    runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	pageID := args[0]
	fmt.Printf("%s %s\n", color.BlueString("Reading page:"), pageID)

	page, err := client.GetPage(cmd.Context(), pageID)
	if err != nil {
		return err
	}

	blocks, err := client.GetBlocks(cmd.Context(), pageID)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s %s\n\n", color.GreenString("Title:"), render.Title(page))

	for _, block := range blocks {
		if line, ok := render.Block(block); ok {
			fmt.Println(line)
		}
	}

	return nil
}
