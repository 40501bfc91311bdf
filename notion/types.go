package notion

import "strings"

// Untitled is the display title for objects with no usable title field.
const Untitled = "(Untitled)"

// BlockType identifies the content variant a Block carries. The set is
// closed here; blocks with types the CLI does not know are decoded with
// every variant pointer nil and skipped by the renderer.
type BlockType string

// Block types the CLI can build and render.
const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockCode             BlockType = "code"
	BlockBookmark         BlockType = "bookmark"
	BlockDivider          BlockType = "divider"
)

// Link is a rich text link target.
type Link struct {
	URL string `json:"url"`
}

// TextContent is the writable part of a rich text object.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// RichTextObject is one segment of a rich text run. Requests populate Text;
// responses additionally carry the resolved PlainText.
type RichTextObject struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
	Href      string       `json:"href,omitempty"`
}

// RichTextSegment is a CLI-side unit of text with an optional link target,
// used to build mixed-content paragraphs. An empty URL means plain text.
type RichTextSegment struct {
	Text string
	URL  string
}

func (s RichTextSegment) richText() RichTextObject {
	rt := RichTextObject{Type: "text", Text: &TextContent{Content: s.Text}}
	if s.URL != "" {
		rt.Text.Link = &Link{URL: s.URL}
	}
	return rt
}

func newText(content string) RichTextObject {
	return RichTextObject{Type: "text", Text: &TextContent{Content: content}}
}

// PlainText concatenates the plain_text of every segment in a rich text run.
func PlainText(run []RichTextObject) string {
	var b strings.Builder
	for _, rt := range run {
		b.WriteString(rt.PlainText)
	}
	return b.String()
}

func firstPlainText(run []RichTextObject) string {
	if len(run) == 0 {
		return ""
	}
	return run[0].PlainText
}

// RichTextBlock is the payload shared by paragraph, heading, and list item
// block variants.
type RichTextBlock struct {
	RichText []RichTextObject `json:"rich_text"`
}

// CodeBlock is the payload of a code block.
type CodeBlock struct {
	RichText []RichTextObject `json:"rich_text"`
	Language string           `json:"language,omitempty"`
}

// BookmarkBlock is the payload of a bookmark block.
type BookmarkBlock struct {
	URL     string           `json:"url"`
	Caption []RichTextObject `json:"caption,omitempty"`
}

// Block is one unit of page content. Exactly one variant pointer matching
// Type is set; all pointers stay nil for block types the CLI does not know.
type Block struct {
	Object           string         `json:"object,omitempty"`
	ID               string         `json:"id,omitempty"`
	Type             BlockType      `json:"type,omitempty"`
	Paragraph        *RichTextBlock `json:"paragraph,omitempty"`
	Heading1         *RichTextBlock `json:"heading_1,omitempty"`
	Heading2         *RichTextBlock `json:"heading_2,omitempty"`
	Heading3         *RichTextBlock `json:"heading_3,omitempty"`
	BulletedListItem *RichTextBlock `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextBlock `json:"numbered_list_item,omitempty"`
	Code             *CodeBlock     `json:"code,omitempty"`
	Bookmark         *BookmarkBlock `json:"bookmark,omitempty"`
	Divider          *struct{}      `json:"divider,omitempty"`
}

// copyable reports whether the block can be re-created on another page and
// returns a sanitized copy with response-only fields cleared. Blocks of
// unknown type have no decoded payload and cannot be mirrored.
func (b Block) copyable() (Block, bool) {
	if b.Paragraph == nil && b.Heading1 == nil && b.Heading2 == nil && b.Heading3 == nil &&
		b.BulletedListItem == nil && b.NumberedListItem == nil &&
		b.Code == nil && b.Bookmark == nil && b.Divider == nil {
		return Block{}, false
	}
	b.Object = "block"
	b.ID = ""
	return b, true
}

// SelectOption is one select or multi_select value.
type SelectOption struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateValue is a date property payload.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// PropertyValue is a typed field on a page or database row. As with Block,
// the variant set is closed: one field matching Type is populated, and
// unrecognized property types leave every variant empty.
type PropertyValue struct {
	Type        string           `json:"type,omitempty"`
	Title       []RichTextObject `json:"title,omitempty"`
	RichText    []RichTextObject `json:"rich_text,omitempty"`
	Select      *SelectOption    `json:"select,omitempty"`
	MultiSelect []SelectOption   `json:"multi_select,omitempty"`
	Number      *float64         `json:"number,omitempty"`
	Checkbox    *bool            `json:"checkbox,omitempty"`
	Date        *DateValue       `json:"date,omitempty"`
	URL         string           `json:"url,omitempty"`
}

// Icon is a page icon; only emoji icons are supported.
type Icon struct {
	Type  string `json:"type,omitempty"`
	Emoji string `json:"emoji,omitempty"`
}

// Parent identifies where a page lives.
type Parent struct {
	Type   string `json:"type,omitempty"`
	PageID string `json:"page_id,omitempty"`
}

// Object is a page or database as returned by the API. Pages carry their
// title inside Properties; databases carry it at the top level.
type Object struct {
	Object     string                   `json:"object,omitempty"`
	ID         string                   `json:"id,omitempty"`
	URL        string                   `json:"url,omitempty"`
	Archived   bool                     `json:"archived,omitempty"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Parent     *Parent                  `json:"parent,omitempty"`
	Title      []RichTextObject         `json:"title,omitempty"`
	Properties map[string]PropertyValue `json:"properties,omitempty"`
}

// PlainTitle extracts the display title. The lookup order is significant:
// the "title" property first, then the "Name" property (database rows), then
// the top-level title array (databases). It resolves the ambiguity between
// page and database-row shapes and must not change.
func (o *Object) PlainTitle() string {
	prop, ok := o.Properties["title"]
	if !ok {
		prop, ok = o.Properties["Name"]
	}
	if ok {
		if t := firstPlainText(prop.Title); t != "" {
			return t
		}
	}

	if t := firstPlainText(o.Title); t != "" {
		return t
	}

	return Untitled
}
