// Package hive fetches the Hive Workshop new-posts page and extracts thread
// records from it.
//
// # Overview
//
// The package is the only place that knows about the remote page. It is split
// into two files:
//
//   - client.go: HTTP fetch, HTML extraction and JoinURL
//   - types.go: the Record value carried through the rest of the program
//
// # Client Usage
//
//	client, err := hive.NewClient(cfg.SourceURL)
//	if err != nil {
//		return fmt.Errorf("init hive client: %w", err)
//	}
//
//	records, err := client.Fetch(ctx)
//	if err != nil {
//		log.Error().Err(err).Msg("fetch failed")
//	}
//
// # Extraction
//
// Each ".titleText" block on the page becomes one Record:
//
//   - Title and Href come from ".title .PreviewTooltip" (text and href attribute)
//   - Forum comes from ".secondRow .forumLink"
//
// Records are returned in document order. Fields are trimmed. A block that is
// missing any of the three parts fails the whole extraction rather than
// producing a partial record.
//
// # Error Handling
//
// Fetch errors are wrapped with context using fmt.Errorf:
//   - "execute request: dial tcp: connection refused"
//   - "fetch /find-new/posts returned status 503"
//   - "extract threads: thread 3: missing forum"
//
// The client never retries. The refresh worker decides what to do with a
// failed fetch.
//
// # Thread Safety
//
// Client is safe for concurrent use, though hivewatch only ever calls it from
// the single refresh worker goroutine.
package hive
