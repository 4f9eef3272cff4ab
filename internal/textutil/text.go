// Package textutil provides text conversion helpers for rendering remote content.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"
)

// HTMLToText renders an HTML fragment as plain text. Tags are removed,
// entities decoded, script and style contents dropped, and block elements
// become line breaks. The result is always safe to print as data.
func HTMLToText(fragment string) string {
	if fragment == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skipDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or malformed input; either way keep what was read
			return tidy(stripControl(b.String(), true))

		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			b.Write(z.Text())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if isSkipped(tag) && tt == html.StartTagToken {
				skipDepth++
				continue
			}
			if isBlock(tag) {
				b.WriteByte('\n')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if isSkipped(tag) {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if isBlock(tag) {
				b.WriteByte('\n')
			}
		}
	}
}

func isSkipped(tag string) bool {
	switch tag {
	case "script", "style", "iframe", "noscript", "template":
		return true
	}
	return false
}

func isBlock(tag string) bool {
	switch tag {
	case "br", "p", "div", "li", "ul", "ol", "tr", "table",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "hr", "section", "article":
		return true
	}
	return false
}

// tidy collapses runs of spaces and blank lines
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// Truncate shortens s to at most width terminal cells, adding an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Width returns the number of terminal cells s occupies
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// SingleLine replaces line breaks and drops control characters so s fits on
// one row and cannot carry terminal escape sequences
func SingleLine(s string) string {
	return stripControl(s, false)
}

// stripControl removes C0/C1 control characters. Line breaks and tabs are
// kept when keepNewlines is set and turned into spaces otherwise.
func stripControl(s string, keepNewlines bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			if keepNewlines {
				return r
			}
			return ' '
		case r == '\r' || r == '\t':
			return ' '
		case r < 0x20 || (r >= 0x7f && r <= 0x9f):
			return -1
		}
		return r
	}, s)
}
