package notion

import "context"

// listResponse is the envelope every Notion list endpoint returns.
type listResponse[T any] struct {
	Results    []T    `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// pageFetch retrieves one result page. cursor is empty for the first page.
// pageSize is a hint; endpoints without a page_size parameter ignore it.
type pageFetch[T any] func(ctx context.Context, cursor string, pageSize int) (listResponse[T], error)

// collectAll drives fetch until the API reports no more pages or limit
// results have been gathered, whichever comes first. A limit of zero returns
// immediately without a single fetch. A response claiming has_more without a
// cursor stops the loop rather than erroring: a malformed upstream answer
// must not hang the client. Results keep API delivery order; any fetch error
// discards everything collected so far.
func collectAll[T any](ctx context.Context, limit int, fetch pageFetch[T]) ([]T, error) {
	if limit <= 0 {
		return nil, nil
	}

	var results []T
	cursor := ""

	for {
		size := limit - len(results)
		if size > maxPageSize {
			size = maxPageSize
		}

		page, err := fetch(ctx, cursor, size)
		if err != nil {
			return nil, err
		}

		results = append(results, page.Results...)
		if len(results) >= limit {
			return results[:limit], nil
		}
		if !page.HasMore || page.NextCursor == "" {
			return results, nil
		}
		cursor = page.NextCursor
	}
}
