package fieldstrip

import (
	"fmt"
	"regexp"
)

var (
	duplicateCommaRe = regexp.MustCompile(`,(\s*\n\s*,)`)
	trailingCommaRe  = regexp.MustCompile(`,(\s*\n\s*})`)
)

// Strip deletes every line of the form `"<field>": "<value>",` and then repairs
// commas left dangling before another comma or a closing brace.
// It returns the cleaned text and the number of removed lines.
func Strip(content, field string) (string, int) {
	lineRe := regexp.MustCompile(fmt.Sprintf(`(?m)^\s*"%s":\s*"[^"]*",?\s*\n`, regexp.QuoteMeta(field)))

	removed := len(lineRe.FindAllStringIndex(content, -1))
	out := lineRe.ReplaceAllString(content, "")
	out = duplicateCommaRe.ReplaceAllString(out, "$1")
	out = trailingCommaRe.ReplaceAllString(out, "$1")
	return out, removed
}
