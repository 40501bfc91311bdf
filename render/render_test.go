package render

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hildr/notion-cli/notion"
)

func init() {
	// Keep expected strings free of ANSI escapes.
	color.NoColor = true
}

func run(text string) []notion.RichTextObject {
	return []notion.RichTextObject{{PlainText: text}}
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestTitle(t *testing.T) {
	obj := notion.Object{
		Properties: map[string]notion.PropertyValue{
			"title": {Title: run("Meeting Notes")},
		},
		Title: run("shadowed"),
	}
	assert.Equal(t, "Meeting Notes", Title(&obj))

	empty := notion.Object{}
	assert.Equal(t, "(Untitled)", Title(&empty))
}

func TestProperty(t *testing.T) {
	tests := []struct {
		name   string
		pv     notion.PropertyValue
		want   string
		wantOK bool
	}{
		{
			name:   "rich text joins all segments",
			pv:     notion.PropertyValue{RichText: []notion.RichTextObject{{PlainText: "a"}, {PlainText: "b"}}},
			want:   "ab",
			wantOK: true,
		},
		{
			name:   "select",
			pv:     notion.PropertyValue{Select: &notion.SelectOption{Name: "In Progress"}},
			want:   "In Progress",
			wantOK: true,
		},
		{
			name: "multi select joins with comma",
			pv: notion.PropertyValue{MultiSelect: []notion.SelectOption{
				{Name: "red"}, {Name: "green"}, {Name: "blue"},
			}},
			want:   "red, green, blue",
			wantOK: true,
		},
		{
			name:   "whole number drops decimal point",
			pv:     notion.PropertyValue{Number: floatPtr(42)},
			want:   "42",
			wantOK: true,
		},
		{
			name:   "fractional number",
			pv:     notion.PropertyValue{Number: floatPtr(2.5)},
			want:   "2.5",
			wantOK: true,
		},
		{
			name:   "checkbox checked",
			pv:     notion.PropertyValue{Checkbox: boolPtr(true)},
			want:   "✓",
			wantOK: true,
		},
		{
			name:   "checkbox unchecked",
			pv:     notion.PropertyValue{Checkbox: boolPtr(false)},
			want:   "✗",
			wantOK: true,
		},
		{
			name:   "date uses start",
			pv:     notion.PropertyValue{Date: &notion.DateValue{Start: "2026-08-29", End: "2026-09-01"}},
			want:   "2026-08-29",
			wantOK: true,
		},
		{
			name:   "url",
			pv:     notion.PropertyValue{URL: "https://example.com"},
			want:   "https://example.com",
			wantOK: true,
		},
		{
			name:   "empty rich text falls through to nothing",
			pv:     notion.PropertyValue{RichText: []notion.RichTextObject{{PlainText: ""}}},
			wantOK: false,
		},
		{
			name:   "unrecognized property renders nothing",
			pv:     notion.PropertyValue{Type: "rollup"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Property(tt.pv)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBlock(t *testing.T) {
	textBlock := func(text string) *notion.RichTextBlock {
		return &notion.RichTextBlock{RichText: run(text)}
	}

	tests := []struct {
		name   string
		block  notion.Block
		want   string
		wantOK bool
	}{
		{
			name:   "paragraph",
			block:  notion.Block{Type: notion.BlockParagraph, Paragraph: textBlock("plain text")},
			want:   "plain text",
			wantOK: true,
		},
		{
			name:   "heading 1",
			block:  notion.Block{Type: notion.BlockHeading1, Heading1: textBlock("Top")},
			want:   "\n# Top",
			wantOK: true,
		},
		{
			name:   "heading 2",
			block:  notion.Block{Type: notion.BlockHeading2, Heading2: textBlock("Mid")},
			want:   "\n## Mid",
			wantOK: true,
		},
		{
			name:   "heading 3",
			block:  notion.Block{Type: notion.BlockHeading3, Heading3: textBlock("Low")},
			want:   "\n### Low",
			wantOK: true,
		},
		{
			name:   "bulleted list item",
			block:  notion.Block{Type: notion.BlockBulletedListItem, BulletedListItem: textBlock("item")},
			want:   "  • item",
			wantOK: true,
		},
		{
			name:   "numbered list item",
			block:  notion.Block{Type: notion.BlockNumberedListItem, NumberedListItem: textBlock("step")},
			want:   "  1. step",
			wantOK: true,
		},
		{
			name:   "code",
			block:  notion.Block{Type: notion.BlockCode, Code: &notion.CodeBlock{RichText: run("x := 1")}},
			want:   "```\nx := 1\n```",
			wantOK: true,
		},
		{
			name:   "divider",
			block:  notion.Block{Type: notion.BlockDivider, Divider: &struct{}{}},
			want:   "---",
			wantOK: true,
		},
		{
			name:   "unknown type is skipped",
			block:  notion.Block{Type: "child_database"},
			wantOK: false,
		},
		{
			name:   "empty paragraph is skipped",
			block:  notion.Block{Type: notion.BlockParagraph, Paragraph: textBlock("")},
			wantOK: false,
		},
		{
			name:   "paragraph with missing payload is skipped",
			block:  notion.Block{Type: notion.BlockParagraph},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Block(tt.block)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
