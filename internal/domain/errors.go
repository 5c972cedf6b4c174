package domain

import "errors"

// The two failure kinds the feed layer distinguishes. Callers branch with
// errors.Is: an ErrFetch on the quake feed is fatal for one-shot rendering
// and degraded-but-alive for the interactive service, while border failures
// of either kind only drop the border overlay.
var (
	// ErrFetch marks network, timeout, and non-2xx HTTP failures.
	ErrFetch = errors.New("feed fetch failed")

	// ErrParse marks a response body that is not the expected GeoJSON.
	ErrParse = errors.New("feed parse failed")
)
