package unitdoc

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// BrokenLink is a relative link in generated output whose target is missing.
type BrokenLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// String returns "source -> target".
func (l BrokenLink) String() string {
	return fmt.Sprintf("%s -> %s", l.Source, l.Target)
}

// LinkChecker verifies that links in generated output resolve to files.
type LinkChecker interface {
	// CheckLinks inspects path (a file or a directory, depending on the
	// implementation) and returns every broken link it finds.
	// Returns ENOTFOUND if path does not exist.
	CheckLinks(ctx context.Context, path string) ([]BrokenLink, error)
}

// LocalTarget returns the file path a link refers to when the link points
// at a local file, with any query or fragment removed. Absolute URLs,
// scheme links such as mailto: or javascript:, protocol-relative and
// fragment-only links are not local.
func LocalTarget(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	if u.Path == "" || path.IsAbs(u.Path) {
		return "", false
	}
	return u.Path, true
}
