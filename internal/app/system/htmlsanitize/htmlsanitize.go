// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips markup from user-supplied free text before
// it is stored. Organization titles and contact info are plain text; any
// tags that arrive in them are dropped entirely.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML from s and trims surrounding whitespace.
func Strip(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
