package mock

import "github.com/fwojciec/snipdoc"

var _ snipdoc.AnchorChecker = (*AnchorChecker)(nil)

// AnchorChecker is a mock implementation of snipdoc.AnchorChecker.
type AnchorChecker struct {
	CheckFn func(html string) ([]snipdoc.Anchor, error)
}

func (c *AnchorChecker) Check(html string) ([]snipdoc.Anchor, error) {
	return c.CheckFn(html)
}
