package unitdoc

import (
	"regexp"
	"strings"
)

// CommentKey is the element holding one documentation comment line.
// Its value attribute carries the text after the "//" marker.
const CommentKey = "SLASHESCOMMENT"

var (
	commentMarkerRe = regexp.MustCompile(`^/\s*`)
	summaryTagRe    = regexp.MustCompile(`</?summary>`)
)

// ExtractComment returns the cleaned documentation comment attached to node,
// or "" when the node carries no comment.
func ExtractComment(node Node) string {
	comments := node.Children(CommentKey)
	if len(comments) == 0 {
		return ""
	}
	lines := make([]string, 0, len(comments))
	for _, c := range comments {
		lines = append(lines, c.Attr("value"))
	}
	return CleanComment(lines...)
}

// CleanComment strips the leading "/" marker and <summary> tags from each
// line, trims it, drops empty lines and joins the rest with a single space.
// Plain text that does not itself start with "/" passes through unchanged,
// so cleaning already cleaned text is a no-op.
func CleanComment(lines ...string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = commentMarkerRe.ReplaceAllString(line, "")
		line = summaryTagRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
