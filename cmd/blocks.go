package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/render"
)

// getBlockIDsCmd represents the get-block-ids command
var getBlockIDsCmd = &cobra.Command{
	Use:     "get-block-ids <page-id>",
	Short:   "List the block IDs of a page (for bulk operations)",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE:    runGetBlockIDs,
}

func init() {
	rootCmd.AddCommand(getBlockIDsCmd)
}

func runGetBlockIDs(cmd *cobra.Command, args []string) error {
	pageID := args[0]
	fmt.Printf("%s %s\n", color.BlueString("Listing blocks of:"), pageID)

	blocks, err := client.GetBlocks(cmd.Context(), pageID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d blocks found\n\n", color.GreenString("✓"), len(blocks))

	for _, block := range blocks {
		blockType := string(block.Type)
		if blockType == "" {
			blockType = "unknown"
		}
		fmt.Printf("  %s %s %s\n", color.CyanString("•"), block.ID, render.Dim("["+blockType+"]"))
	}

	return nil
}
