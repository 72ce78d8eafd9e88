package blogservice

import "github.com/microcosm-cc/bluemonday"

// Content is stored as an HTML fragment. The UGC policy keeps formatting,
// links and images and drops scripts, styles and event handlers.
var contentPolicy = bluemonday.UGCPolicy()

func sanitizeContent(content string) string {
	return contentPolicy.Sanitize(content)
}
