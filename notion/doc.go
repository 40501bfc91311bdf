// Package notion implements a client for the Notion REST API.
//
// The client handles bearer authentication, the Notion-Version header,
// transparent retry on rate-limit responses, and cursor-based pagination.
// Operations map one-to-one onto CLI subcommands: search, page and block
// reads, page creation, the various block append forms, updates, archival,
// and database queries.
package notion
