package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	moveParent string
	moveDelete bool
)

// moveCmd represents the move command
var moveCmd = &cobra.Command{
	Use:   "move <page-id>",
	Short: "Move a page under a new parent",
	Long: `Copy a page (title and content) under a new parent, optionally
archiving the original.

The copy and the archive are two separate API calls; if the second fails
the page exists in both places and the printed ID identifies the copy.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE:    runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().StringVarP(&moveParent, "parent", "p", "", "new parent page ID")
	moveCmd.Flags().BoolVar(&moveDelete, "delete", false, "archive the original page after copying")
	moveCmd.MarkFlagRequired("parent")
}

func runMove(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s %s\n", color.BlueString("Moving page:"), args[0])

	page, err := client.MovePage(cmd.Context(), args[0], moveParent, moveDelete)
	if err != nil {
		if page != nil {
			fmt.Printf("%s Page copied to %s but the original was not archived\n", color.YellowString("⚠"), page.ID)
		}
		return err
	}

	if moveDelete {
		fmt.Printf("%s Page moved (original archived)!\n", color.GreenString("✓"))
	} else {
		fmt.Printf("%s Page copied!\n", color.GreenString("✓"))
	}
	fmt.Printf("  ID: %s\n", page.ID)
	if page.URL != "" {
		fmt.Printf("  URL: %s\n", page.URL)
	}

	return nil
}
