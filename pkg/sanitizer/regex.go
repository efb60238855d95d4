package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	nonDigitRegex   = regexp.MustCompile(`[^0-9]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
