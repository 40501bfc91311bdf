package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <page-id>",
	Short:   "Delete (archive) a page",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE:    runDelete,
}

// deleteBlockCmd represents the delete-block command
var deleteBlockCmd = &cobra.Command{
	Use:     "delete-block <block-id>",
	Short:   "Delete (archive) a block",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE:    runDeleteBlock,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(deleteBlockCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s %s\n", color.BlueString("Archiving page:"), args[0])

	page, err := client.DeletePage(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if page.Archived {
		fmt.Printf("%s Page archived (moved to trash)!\n", color.GreenString("✓"))
	} else {
		fmt.Printf("%s Page status unclear\n", color.YellowString("⚠"))
	}

	return nil
}

func runDeleteBlock(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s %s\n", color.BlueString("Deleting block:"), args[0])

	if err := client.DeleteBlock(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Printf("%s Block deleted!\n", color.GreenString("✓"))
	return nil
}
