package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/notion"
)

var (
	appendCodeLanguage string
	bookmarkCaption    string
	headingLevel       int
	linkPrefix         string
	linkText           string
	linkURL            string
	linkSuffix         string
)

// appendCmd represents the append command
var appendCmd = &cobra.Command{
	Use:     "append <page-id> <content>",
	Short:   "Append a paragraph to a page",
	Args:    cobra.ExactArgs(2),
	PreRunE: initializeClient,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", color.BlueString("Appending to:"), args[0])
		if err := client.AppendParagraph(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("%s Content appended!\n", color.GreenString("✓"))
		return nil
	},
}

// appendCodeCmd represents the append-code command
var appendCodeCmd = &cobra.Command{
	Use:     "append-code <page-id> <code>",
	Short:   "Append a code block to a page",
	Args:    cobra.ExactArgs(2),
	PreRunE: initializeClient,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", color.BlueString("Appending code to:"), args[0])
		if err := client.AppendCode(cmd.Context(), args[0], args[1], appendCodeLanguage); err != nil {
			return err
		}
		fmt.Printf("%s Code block appended!\n", color.GreenString("✓"))
		return nil
	},
}

// appendBookmarkCmd represents the append-bookmark command
var appendBookmarkCmd = &cobra.Command{
	Use:     "append-bookmark <page-id> <url>",
	Short:   "Append a bookmark to a page",
	Args:    cobra.ExactArgs(2),
	PreRunE: initializeClient,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", color.BlueString("Appending bookmark to:"), args[0])
		if err := client.AppendBookmark(cmd.Context(), args[0], args[1], bookmarkCaption); err != nil {
			return err
		}
		fmt.Printf("%s Bookmark appended!\n", color.GreenString("✓"))
		return nil
	},
}

// appendHeadingCmd represents the append-heading command
var appendHeadingCmd = &cobra.Command{
	Use:     "append-heading <page-id> <text>",
	Short:   "Append a heading to a page",
	Args:    cobra.ExactArgs(2),
	PreRunE: initializeClient,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", color.BlueString("Appending heading to:"), args[0])
		if err := client.AppendHeading(cmd.Context(), args[0], args[1], headingLevel); err != nil {
			return err
		}
		fmt.Printf("%s Heading appended!\n", color.GreenString("✓"))
		return nil
	},
}

// appendDividerCmd represents the append-divider command
var appendDividerCmd = &cobra.Command{
	Use:     "append-divider <page-id>",
	Short:   "Append a divider to a page",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s %s\n", color.BlueString("Appending divider to:"), args[0])
		if err := client.AppendDivider(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("%s Divider appended!\n", color.GreenString("✓"))
		return nil
	},
}

// appendListCmd represents the append-list command
var appendListCmd = &cobra.Command{
	Use:     "append-list <page-id> <items>",
	Short:   "Append a bulleted list to a page (comma-separated items)",
	Args:    cobra.ExactArgs(2),
	PreRunE: initializeClient,
	RunE: func(cmd *cobra.Command, args []string) error {
		items := strings.Split(args[1], ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}

		fmt.Printf("%s %s\n", color.BlueString("Appending list to:"), args[0])
		if err := client.AppendList(cmd.Context(), args[0], items); err != nil {
			return err
		}
		fmt.Printf("%s List appended (%d items)!\n", color.GreenString("✓"), len(items))
		return nil
	},
}

// appendLinkCmd represents the append-link command
var appendLinkCmd = &cobra.Command{
	Use:     "append-link <page-id>",
	Short:   "Append a paragraph containing a link",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeClient,
	RunE: func(cmd *cobra.Command, args []string) error {
		var segments []notion.RichTextSegment
		if linkPrefix != "" {
			segments = append(segments, notion.RichTextSegment{Text: linkPrefix})
		}
		segments = append(segments, notion.RichTextSegment{Text: linkText, URL: linkURL})
		if linkSuffix != "" {
			segments = append(segments, notion.RichTextSegment{Text: linkSuffix})
		}

		fmt.Printf("%s %s\n", color.BlueString("Appending link to:"), args[0])
		if err := client.AppendRichText(cmd.Context(), args[0], segments); err != nil {
			return err
		}
		fmt.Printf("%s Link appended!\n", color.GreenString("✓"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(appendCmd)

	rootCmd.AddCommand(appendCodeCmd)
	appendCodeCmd.Flags().StringVarP(&appendCodeLanguage, "language", "l", "plain text", "programming language (e.g. go, python, javascript)")

	rootCmd.AddCommand(appendBookmarkCmd)
	appendBookmarkCmd.Flags().StringVarP(&bookmarkCaption, "caption", "c", "", "optional caption")

	rootCmd.AddCommand(appendHeadingCmd)
	appendHeadingCmd.Flags().IntVarP(&headingLevel, "level", "l", 2, "heading level (1, 2, or 3)")

	rootCmd.AddCommand(appendDividerCmd)
	rootCmd.AddCommand(appendListCmd)

	rootCmd.AddCommand(appendLinkCmd)
	appendLinkCmd.Flags().StringVar(&linkPrefix, "prefix", "", "text before the link")
	appendLinkCmd.Flags().StringVar(&linkText, "link-text", "", "link text")
	appendLinkCmd.Flags().StringVar(&linkURL, "url", "", "link URL")
	appendLinkCmd.Flags().StringVar(&linkSuffix, "suffix", "", "text after the link")
	appendLinkCmd.MarkFlagRequired("link-text")
	appendLinkCmd.MarkFlagRequired("url")
}
