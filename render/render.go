// Package render projects Notion API objects onto display strings. Every
// function here is a pure read-only transformation: no I/O, no mutation.
// Callers decide where the strings go.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/hildr/notion-cli/notion"
)

var (
	bold = color.New(color.Bold)
	dim  = color.New(color.Faint)
)

// Dim renders s in faint text, used for secondary detail like IDs.
func Dim(s string) string {
	return dim.Sprint(s)
}

// Title returns the display title of a page or database, falling back to
// the "(Untitled)" sentinel.
func Title(o *notion.Object) string {
	return o.PlainTitle()
}

// Property renders one database property value. The variants are tried in a
// fixed order and the first match wins. Property types outside the
// recognized set report ok=false and render nothing; skipping them keeps
// the CLI quiet about property types newer than it is.
func Property(pv notion.PropertyValue) (string, bool) {
	if len(pv.RichText) > 0 {
		if text := notion.PlainText(pv.RichText); text != "" {
			return text, true
		}
	}

	if pv.Select != nil && pv.Select.Name != "" {
		return pv.Select.Name, true
	}

	if len(pv.MultiSelect) > 0 {
		names := make([]string, 0, len(pv.MultiSelect))
		for _, opt := range pv.MultiSelect {
			if opt.Name != "" {
				names = append(names, opt.Name)
			}
		}
		if len(names) > 0 {
			return strings.Join(names, ", "), true
		}
	}

	if pv.Number != nil {
		return strconv.FormatFloat(*pv.Number, 'f', -1, 64), true
	}

	if pv.Checkbox != nil {
		if *pv.Checkbox {
			return "✓", true
		}
		return "✗", true
	}

	if pv.Date != nil && pv.Date.Start != "" {
		return pv.Date.Start, true
	}

	if pv.URL != "" {
		return pv.URL, true
	}

	return "", false
}

// Block renders one content block. Unknown block types report ok=false and
// are skipped by callers; the upstream API grows new block types faster
// than clients follow, and printing garbage for them helps nobody.
func Block(b notion.Block) (string, bool) {
	switch b.Type {
	case notion.BlockParagraph:
		return richTextLine(b.Paragraph, "")
	case notion.BlockHeading1:
		return heading("#", b.Heading1)
	case notion.BlockHeading2:
		return heading("##", b.Heading2)
	case notion.BlockHeading3:
		return heading("###", b.Heading3)
	case notion.BlockBulletedListItem:
		return richTextLine(b.BulletedListItem, "  • ")
	case notion.BlockNumberedListItem:
		return richTextLine(b.NumberedListItem, "  1. ")
	case notion.BlockCode:
		if b.Code == nil {
			return "", false
		}
		text := notion.PlainText(b.Code.RichText)
		if text == "" {
			return "", false
		}
		return fmt.Sprintf("```\n%s\n```", dim.Sprint(text)), true
	case notion.BlockDivider:
		return dim.Sprint("---"), true
	default:
		return "", false
	}
}

func richTextLine(run *notion.RichTextBlock, prefix string) (string, bool) {
	if run == nil {
		return "", false
	}
	text := notion.PlainText(run.RichText)
	if text == "" {
		return "", false
	}
	return prefix + text, true
}

// heading renders with a leading blank line so sections separate visually.
func heading(marker string, run *notion.RichTextBlock) (string, bool) {
	if run == nil {
		return "", false
	}
	text := notion.PlainText(run.RichText)
	if text == "" {
		return "", false
	}
	return "\n" + bold.Sprintf("%s %s", marker, text), true
}
