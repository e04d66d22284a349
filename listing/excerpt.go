package listing

import (
	"strings"

	"golang.org/x/net/html"
)

// ExcerptLength is the maximum plain-text excerpt length in runes.
const ExcerptLength = 120

// Excerpt extracts the plain text of a rich-text HTML fragment and truncates
// it to ExcerptLength runes, appending an ellipsis when shortened. Invalid or
// empty markup yields an empty excerpt rather than an error; the content is
// opaque to the data layer and an excerpt is presentation-only.
func Excerpt(htmlStr string) string {
	return ExcerptN(htmlStr, ExcerptLength)
}

// ExcerptN is Excerpt with a caller-chosen maximum length.
func ExcerptN(htmlStr string, maxLen int) string {
	text := plainText(htmlStr)
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}

// plainText walks the parsed fragment and joins its text nodes with single
// spaces.
func plainText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}
