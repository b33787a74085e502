package snipdoc

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AnchorIDLength is the length of generated anchor ids.
const AnchorIDLength = 8

const anchorAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewAnchorID returns a random id of lowercase letters and digits.
// Collisions are unlikely within a page but not impossible.
func NewAnchorID() string {
	b := make([]byte, AnchorIDLength)
	for i := range b {
		b[i] = anchorAlphabet[rand.IntN(len(anchorAlphabet))]
	}
	return string(b)
}

// RenderBlock wraps body in a raw-HTML block directive containing a
// <pre id="id"><code> element. The body is embedded as-is, without escaping,
// since snippet bodies are usually pre-highlighted markup.
func RenderBlock(id, body string) string {
	var b strings.Builder
	b.WriteString("\n/// html | div[class=\"highlight\"]\n")
	b.WriteString("    markdown: html\n")
	b.WriteString(`<pre id="`)
	b.WriteString(id)
	b.WriteString(`"><code>`)
	b.WriteString(body)
	b.WriteString("</code></pre>\n")
	b.WriteString("///\n")
	b.WriteString("    ")
	return b.String()
}

// IndentBlock prefixes n spaces to every line of s that is not blank and
// then trims leading whitespace from the result once.
// A block produced by RenderBlock starts with an empty line, so the first
// directive line ends up unindented: the caller already placed it after
// the indentation of the surrounding template.
func IndentBlock(s string, n int) string {
	if n > 0 {
		prefix := strings.Repeat(" ", n)
		var b strings.Builder
		for _, line := range splitLines(s) {
			if strings.TrimSpace(line) != "" {
				b.WriteString(prefix)
			}
			b.WriteString(line)
		}
		s = b.String()
	}
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// splitLines splits s after every line boundary, keeping the boundaries.
// "\r\n" is one boundary; a lone "\r", form feed, vertical tab, the
// information separators and the Unicode line and paragraph separators
// also end a line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		switch r {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				continue
			}
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		default:
			continue
		}
		end := i + utf8.RuneLen(r)
		lines = append(lines, s[start:end])
		start = end
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// MarkdownCodeBlock renders content as a fenced markdown code block.
func MarkdownCodeBlock(content, lang string) string {
	return "```" + lang + "\n" + content + "\n```"
}
