package snipdoc

// MarkupStripper removes markup from HTML fragments.
type MarkupStripper interface {
	// Strip returns the text content of html in document order with
	// character references decoded. It never fails; malformed markup
	// yields whatever text can be recovered.
	Strip(html string) string
}
