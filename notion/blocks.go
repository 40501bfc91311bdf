package notion

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
)

type appendChildrenRequest struct {
	Children []Block `json:"children"`
}

// GetBlocks returns every child block of a page, following pagination to the
// end. The endpoint takes no page_size hint, so pages arrive at whatever
// size the API chooses.
func (c *Client) GetBlocks(ctx context.Context, pageID string) ([]Block, error) {
	id, err := NormalizeID(pageID)
	if err != nil {
		return nil, err
	}

	blocks, err := collectAll(ctx, math.MaxInt, func(ctx context.Context, cursor string, _ int) (listResponse[Block], error) {
		query := url.Values{}
		if cursor != "" {
			query.Set("start_cursor", cursor)
		}

		var page listResponse[Block]
		err := c.doJSON(ctx, request{
			method: http.MethodGet,
			path:   "/blocks/" + id + "/children",
			query:  query,
		}, &page)
		return page, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get blocks: %w", err)
	}

	c.logger.Debug().Str("page_id", id).Int("count", len(blocks)).Msg("Retrieved blocks")
	return blocks, nil
}

// appendChildren is the single PATCH every append variant goes through.
func (c *Client) appendChildren(ctx context.Context, pageID string, blocks ...Block) error {
	id, err := NormalizeID(pageID)
	if err != nil {
		return err
	}

	var result listResponse[Block]
	err = c.doJSON(ctx, request{
		method: http.MethodPatch,
		path:   "/blocks/" + id + "/children",
		body:   appendChildrenRequest{Children: blocks},
	}, &result)
	if err != nil {
		return fmt.Errorf("failed to append blocks: %w", err)
	}

	c.logger.Debug().Str("page_id", id).Int("count", len(blocks)).Msg("Appended blocks")
	return nil
}

func paragraphBlock(text string) Block {
	return Block{
		Object:    "block",
		Type:      BlockParagraph,
		Paragraph: &RichTextBlock{RichText: []RichTextObject{newText(text)}},
	}
}

// AppendParagraph appends a plain paragraph block.
func (c *Client) AppendParagraph(ctx context.Context, pageID, content string) error {
	return c.appendChildren(ctx, pageID, paragraphBlock(content))
}

// AppendCode appends a fenced code block tagged with language.
func (c *Client) AppendCode(ctx context.Context, pageID, code, language string) error {
	return c.appendChildren(ctx, pageID, Block{
		Object: "block",
		Type:   BlockCode,
		Code:   &CodeBlock{RichText: []RichTextObject{newText(code)}, Language: language},
	})
}

// AppendBookmark appends a bookmark block, optionally captioned.
func (c *Client) AppendBookmark(ctx context.Context, pageID, bookmarkURL, caption string) error {
	bookmark := &BookmarkBlock{URL: bookmarkURL}
	if caption != "" {
		bookmark.Caption = []RichTextObject{newText(caption)}
	}

	return c.appendChildren(ctx, pageID, Block{
		Object:   "block",
		Type:     BlockBookmark,
		Bookmark: bookmark,
	})
}

// HeadingBlockType maps a heading level to its block type.
func HeadingBlockType(level int) (BlockType, error) {
	switch level {
	case 1:
		return BlockHeading1, nil
	case 2:
		return BlockHeading2, nil
	case 3:
		return BlockHeading3, nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrInvalidHeadingLevel, level)
	}
}

// AppendHeading appends a heading block at the given level (1-3).
func (c *Client) AppendHeading(ctx context.Context, pageID, text string, level int) error {
	blockType, err := HeadingBlockType(level)
	if err != nil {
		return err
	}

	block := Block{Object: "block", Type: blockType}
	run := &RichTextBlock{RichText: []RichTextObject{newText(text)}}
	switch blockType {
	case BlockHeading1:
		block.Heading1 = run
	case BlockHeading2:
		block.Heading2 = run
	case BlockHeading3:
		block.Heading3 = run
	}

	return c.appendChildren(ctx, pageID, block)
}

// AppendDivider appends a horizontal rule.
func (c *Client) AppendDivider(ctx context.Context, pageID string) error {
	return c.appendChildren(ctx, pageID, Block{
		Object:  "block",
		Type:    BlockDivider,
		Divider: &struct{}{},
	})
}

// AppendList appends one bulleted list item per entry in items, in a single
// API call.
func (c *Client) AppendList(ctx context.Context, pageID string, items []string) error {
	blocks := make([]Block, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, Block{
			Object:           "block",
			Type:             BlockBulletedListItem,
			BulletedListItem: &RichTextBlock{RichText: []RichTextObject{newText(item)}},
		})
	}
	return c.appendChildren(ctx, pageID, blocks...)
}

// AppendRichText appends a single paragraph mixing plain and linked
// segments.
func (c *Client) AppendRichText(ctx context.Context, pageID string, segments []RichTextSegment) error {
	run := make([]RichTextObject, 0, len(segments))
	for _, s := range segments {
		run = append(run, s.richText())
	}

	return c.appendChildren(ctx, pageID, Block{
		Object:    "block",
		Type:      BlockParagraph,
		Paragraph: &RichTextBlock{RichText: run},
	})
}

// DeleteBlock removes a single block from its page.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) error {
	id, err := NormalizeID(blockID)
	if err != nil {
		return err
	}

	if _, err := c.do(ctx, request{method: http.MethodDelete, path: "/blocks/" + id}); err != nil {
		return fmt.Errorf("failed to delete block: %w", err)
	}

	c.logger.Debug().Str("block_id", id).Msg("Deleted block")
	return nil
}
