package nethtml_test

import (
	"testing"

	"github.com/fwojciec/snipdoc"
	"github.com/fwojciec/snipdoc/nethtml"
	"github.com/stretchr/testify/assert"
)

// Ensure Stripper implements snipdoc.MarkupStripper at compile time.
var _ snipdoc.MarkupStripper = (*nethtml.Stripper)(nil)

func TestStripper_Strip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "decodes entities inside tags",
			input: "<b>Hello &amp; world</b>",
			want:  "Hello & world",
		},
		{
			name:  "returns plain text unchanged",
			input: "plain text, no tags",
			want:  "plain text, no tags",
		},
		{
			name:  "returns empty string for empty input",
			input: "",
			want:  "",
		},
		{
			name:  "decodes numeric character references",
			input: "<code>a &#60; b &#x3E; c</code>",
			want:  "a < b > c",
		},
		{
			name:  "keeps whitespace between tags",
			input: "<p>first</p>\n  <p>second</p>",
			want:  "first\n  second",
		},
		{
			name:  "keeps carriage returns",
			input: "<p>line one</p>\r\n<p>line two\rthree</p>",
			want:  "line one\r\nline two\rthree",
		},
		{
			name:  "keeps script text undecoded",
			input: "<script>if (a &amp;&amp; b) {}</script>&amp;",
			want:  "if (a &amp;&amp; b) {}&",
		},
		{
			name:  "drops comments",
			input: "before<!-- hidden -->after",
			want:  "beforeafter",
		},
		{
			name:  "strips highlighted code",
			input: `<span class="kd">final</span> <span class="n">db</span> = <span class="n">AppDatabase</span>();`,
			want:  "final db = AppDatabase();",
		},
		{
			name:  "treats lone less-than as text",
			input: "1 < 2",
			want:  "1 < 2",
		},
		{
			name:  "tolerates unclosed tags",
			input: "<div>unclosed <span>text",
			want:  "unclosed text",
		},
		{
			name:  "tolerates stray closing tags",
			input: "text</em></div> more",
			want:  "text more",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := nethtml.NewStripper()

			assert.Equal(t, tt.want, s.Strip(tt.input))
		})
	}
}
