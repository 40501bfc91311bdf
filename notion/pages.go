package notion

import (
	"context"
	"fmt"
	"net/http"
)

type createPageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
	Children   []Block                  `json:"children"`
}

type updatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties,omitempty"`
	Icon       *Icon                    `json:"icon,omitempty"`
}

type archiveRequest struct {
	Archived bool `json:"archived"`
}

func titleProperty(title string) map[string]PropertyValue {
	return map[string]PropertyValue{
		"title": {Title: []RichTextObject{{Text: &TextContent{Content: title}}}},
	}
}

// GetPage fetches a single page by ID.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Object, error) {
	id, err := NormalizeID(pageID)
	if err != nil {
		return nil, err
	}

	var page Object
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/pages/" + id}, &page); err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return &page, nil
}

// CreatePage creates a page under parentID. When content is non-empty the
// page starts with a single paragraph block holding it.
func (c *Client) CreatePage(ctx context.Context, parentID, title, content string) (*Object, error) {
	id, err := NormalizeID(parentID)
	if err != nil {
		return nil, err
	}

	children := []Block{}
	if content != "" {
		children = append(children, paragraphBlock(content))
	}

	var page Object
	err = c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/pages",
		body: createPageRequest{
			Parent:     Parent{PageID: id},
			Properties: titleProperty(title),
			Children:   children,
		},
	}, &page)
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	c.logger.Debug().Str("page_id", page.ID).Str("title", title).Msg("Created page")
	return &page, nil
}

// UpdatePage changes a page's title, icon, or both. An empty string leaves
// the field untouched; asking for neither is a validation error.
func (c *Client) UpdatePage(ctx context.Context, pageID, title, icon string) (*Object, error) {
	if title == "" && icon == "" {
		return nil, ErrNothingToUpdate
	}

	id, err := NormalizeID(pageID)
	if err != nil {
		return nil, err
	}

	body := updatePageRequest{}
	if title != "" {
		body.Properties = titleProperty(title)
	}
	if icon != "" {
		body.Icon = &Icon{Type: "emoji", Emoji: icon}
	}

	var page Object
	err = c.doJSON(ctx, request{method: http.MethodPatch, path: "/pages/" + id, body: body}, &page)
	if err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return &page, nil
}

// DeletePage archives a page (Notion's trash; there is no hard delete).
func (c *Client) DeletePage(ctx context.Context, pageID string) (*Object, error) {
	id, err := NormalizeID(pageID)
	if err != nil {
		return nil, err
	}

	var page Object
	err = c.doJSON(ctx, request{
		method: http.MethodPatch,
		path:   "/pages/" + id,
		body:   archiveRequest{Archived: true},
	}, &page)
	if err != nil {
		return nil, fmt.Errorf("failed to archive page: %w", err)
	}

	c.logger.Debug().Str("page_id", id).Msg("Archived page")
	return &page, nil
}

// MovePage copies a page's title and supported content blocks to a new page
// under newParentID, then archives the original when deleteOriginal is set.
// The copy and the archive are separate API calls, not a transaction: a
// failure between them leaves both pages in place, which is why the new
// page is returned even when archiving fails.
func (c *Client) MovePage(ctx context.Context, pageID, newParentID string, deleteOriginal bool) (*Object, error) {
	parentID, err := NormalizeID(newParentID)
	if err != nil {
		return nil, err
	}

	page, err := c.GetPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	blocks, err := c.GetBlocks(ctx, pageID)
	if err != nil {
		return nil, err
	}

	children := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if cb, ok := b.copyable(); ok {
			children = append(children, cb)
		}
	}

	var created Object
	err = c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/pages",
		body: createPageRequest{
			Parent:     Parent{PageID: parentID},
			Properties: titleProperty(page.PlainTitle()),
			Children:   children,
		},
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to copy page: %w", err)
	}

	if deleteOriginal {
		if _, err := c.DeletePage(ctx, pageID); err != nil {
			return &created, fmt.Errorf("page copied to %s but archiving the original failed: %w", created.ID, err)
		}
	}

	return &created, nil
}
