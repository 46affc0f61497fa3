package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/ats-optimizer/internal/patterns"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// maxTitleWords is the longest span accepted from a title template match.
const maxTitleWords = 6

// titleScanWindow bounds the fallback scan to the opening of the posting.
const titleScanWindow = 500

var multiSpace = regexp.MustCompile(`\s+`)

// ExtractJobTitle extracts the job title from a posting. It tries the fixed
// template patterns in order and accepts the first match of at most six
// words. Failing that, it scans the first 500 characters for a short span
// where every alphabetic word is capitalized. Returns the UnknownTitle
// sentinel when nothing matches.
func ExtractJobTitle(text string) string {
	for _, pattern := range patterns.TitlePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		title := multiSpace.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if len(strings.Fields(title)) <= maxTitleWords {
			return title
		}
	}

	window := text
	if len(window) > titleScanWindow {
		window = window[:titleScanWindow]
	}
	for _, sent := range strings.Split(window, ".") {
		words := strings.Fields(strings.TrimSpace(sent))
		if len(words) >= 2 && len(words) <= 5 && allAlphabeticCapitalized(words) {
			return strings.Join(words, " ")
		}
	}

	return types.UnknownTitle
}

// allAlphabeticCapitalized reports whether every word starting with a letter
// starts with an uppercase letter. Words starting with digits or symbols are
// not considered.
func allAlphabeticCapitalized(words []string) bool {
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 || !unicode.IsLetter(r[0]) {
			continue
		}
		if !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}
