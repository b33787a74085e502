package mock

import "github.com/fwojciec/snipdoc"

var _ snipdoc.MarkupStripper = (*MarkupStripper)(nil)

// MarkupStripper is a mock implementation of snipdoc.MarkupStripper.
type MarkupStripper struct {
	StripFn func(html string) string
}

func (s *MarkupStripper) Strip(html string) string {
	return s.StripFn(html)
}
