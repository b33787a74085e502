package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/snipdoc"
)

// Ensure AnchorChecker implements snipdoc.AnchorChecker at compile time.
var _ snipdoc.AnchorChecker = (*AnchorChecker)(nil)

// anchorSelector matches the code blocks produced by snipdoc.RenderBlock.
const anchorSelector = "pre[id]"

// AnchorChecker finds code block anchors in rendered pages.
// Expanded markdown pages work too, since the raw block markup parses as HTML.
type AnchorChecker struct{}

// NewAnchorChecker creates a new AnchorChecker.
func NewAnchorChecker() *AnchorChecker {
	return &AnchorChecker{}
}

// Check returns the code block anchors of html in order of first use.
func (c *AnchorChecker) Check(html string) ([]snipdoc.Anchor, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, snipdoc.Errorf(snipdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	// Track index into anchors for O(1) count updates
	seen := make(map[string]int)
	var anchors []snipdoc.Anchor

	doc.Find(anchorSelector).Each(func(_ int, sel *goquery.Selection) {
		id := strings.TrimSpace(sel.AttrOr("id", ""))
		if id == "" {
			return
		}
		if idx, ok := seen[id]; ok {
			anchors[idx].Count++
			return
		}
		seen[id] = len(anchors)
		anchors = append(anchors, snipdoc.Anchor{ID: id, Count: 1})
	})

	if dups := snipdoc.DuplicateAnchors(anchors); len(dups) > 0 {
		parts := make([]string, 0, len(dups))
		for _, d := range dups {
			parts = append(parts, fmt.Sprintf("%s (%d times)", d.ID, d.Count))
		}
		return anchors, snipdoc.Errorf(snipdoc.EINVALID, "duplicate anchor ids: %s", strings.Join(parts, ", "))
	}

	return anchors, nil
}
