package parser

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// ParsedArticle is the readable core of a rendered page.
type ParsedArticle struct {
	Title            string
	HTMLContent      string
	PlainTextContent string
	Excerpt          string
	TopImage         string
}

// ParseHTML extracts the article from a rendered HTML document.
func ParseHTML(htmlStr string) (*ParsedArticle, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		Title:            article.Title,
		HTMLContent:      article.Content,
		PlainTextContent: article.TextContent,
		Excerpt:          article.Excerpt,
		TopImage:         article.Image,
	}, nil
}
