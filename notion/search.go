package notion

import (
	"context"
	"net/http"
)

type searchRequest struct {
	Query       string `json:"query"`
	PageSize    int    `json:"page_size,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// Search finds pages and databases matching query, following pagination
// until limit results are collected or the API runs out.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Object, error) {
	results, err := collectAll(ctx, limit, func(ctx context.Context, cursor string, pageSize int) (listResponse[Object], error) {
		var page listResponse[Object]
		err := c.doJSON(ctx, request{
			method: http.MethodPost,
			path:   "/search",
			body:   searchRequest{Query: query, PageSize: pageSize, StartCursor: cursor},
		}, &page)
		return page, err
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("query", query).Int("count", len(results)).Msg("Search complete")
	return results, nil
}
