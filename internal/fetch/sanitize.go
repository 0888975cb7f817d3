package fetch

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// SanitizeFilename strips characters that are unsafe in filenames and
// replaces spaces with underscores. Apply to base names only; path
// separators are stripped too.
func SanitizeFilename(name string) string {
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, " ", "_")
}
