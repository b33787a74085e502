package snipdoc

// Anchor is an element id found in rendered HTML.
type Anchor struct {
	ID string

	// Count is the number of elements that carry ID.
	Count int
}

// AnchorChecker lists code block anchors in rendered pages.
type AnchorChecker interface {
	// Check returns the anchors of html in document order.
	// Returns EINVALID, together with the anchors, if an id is used more
	// than once.
	Check(html string) ([]Anchor, error)
}

// DuplicateAnchors returns the anchors used more than once.
func DuplicateAnchors(anchors []Anchor) []Anchor {
	var dups []Anchor
	for _, a := range anchors {
		if a.Count > 1 {
			dups = append(dups, a)
		}
	}
	return dups
}
