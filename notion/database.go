package notion

import (
	"context"
	"net/http"
)

type queryRequest struct {
	PageSize    int          `json:"page_size,omitempty"`
	StartCursor string       `json:"start_cursor,omitempty"`
	Filter      *QueryFilter `json:"filter,omitempty"`
	Sorts       []querySort  `json:"sorts,omitempty"`
}

type querySort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// QueryDatabase fetches rows from a database, paginating up to limit.
// filter uses the "Prop[:type]=value" shorthand (see ParseFilter); an empty
// filter or sort leaves that clause out. direction "asc" sorts ascending,
// anything else descending.
func (c *Client) QueryDatabase(ctx context.Context, databaseID, filter, sort, direction string, limit int) ([]Object, error) {
	id, err := NormalizeID(databaseID)
	if err != nil {
		return nil, err
	}

	queryFilter := ParseFilter(filter)

	var sorts []querySort
	if sort != "" {
		dir := "descending"
		if direction == "asc" {
			dir = "ascending"
		}
		sorts = []querySort{{Property: sort, Direction: dir}}
	}

	results, err := collectAll(ctx, limit, func(ctx context.Context, cursor string, pageSize int) (listResponse[Object], error) {
		var page listResponse[Object]
		err := c.doJSON(ctx, request{
			method: http.MethodPost,
			path:   "/databases/" + id + "/query",
			body: queryRequest{
				PageSize:    pageSize,
				StartCursor: cursor,
				Filter:      queryFilter,
				Sorts:       sorts,
			},
		}, &page)
		return page, err
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("database_id", id).Int("count", len(results)).Msg("Query complete")
	return results, nil
}
