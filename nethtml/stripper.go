// Package nethtml strips markup using the golang.org/x/net/html tokenizer.
package nethtml

import (
	"strings"

	"github.com/fwojciec/snipdoc"
	"golang.org/x/net/html"
)

// Ensure Stripper implements snipdoc.MarkupStripper at compile time.
var _ snipdoc.MarkupStripper = (*Stripper)(nil)

// Stripper removes markup from HTML fragments.
// The tokenizer never rejects input, so malformed fragments degrade to
// whatever text precedes the damage.
type Stripper struct{}

// NewStripper creates a new Stripper.
func NewStripper() *Stripper {
	return &Stripper{}
}

// Strip returns the concatenated text tokens of fragment with character
// references decoded. Tags, comments and doctypes are dropped; whitespace
// is kept as-is, including carriage returns.
//
// Text is taken from the raw token bytes because Tokenizer.Text normalizes
// line endings. Script and style content is kept undecoded.
func (s *Stripper) Strip(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var b strings.Builder
	b.Grow(len(fragment))
	rawText := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or a partial tag cut off by the end of input.
			return b.String()
		case html.TextToken:
			if rawText {
				b.Write(z.Raw())
			} else {
				b.WriteString(html.UnescapeString(string(z.Raw())))
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			rawText = isRawText(string(name))
		case html.EndTagToken, html.SelfClosingTagToken:
			rawText = false
		}
	}
}

func isRawText(tag string) bool {
	return tag == "script" || tag == "style"
}
