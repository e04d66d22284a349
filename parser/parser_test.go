package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogboard/parser"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Writing Go services</title></head>
<body>
  <nav>home about contact</nav>
  <article>
    <h1>Writing Go services</h1>
    <p>Services in Go start from a listener and a handler. The rest of the
    structure grows around how requests flow through those two points, and
    most teams converge on a similar layering once the codebase matures.</p>
    <p>This article walks through that layering step by step, starting with
    the transport edge and finishing at the storage layer.</p>
  </article>
  <footer>copyright</footer>
</body>
</html>`

func TestParseHTML(t *testing.T) {
	article, err := parser.ParseHTML(samplePage)
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, article.PlainTextContent, "listener and a handler")
	assert.NotContains(t, article.PlainTextContent, "<p>")
}

func TestParseHTMLInvalidInput(t *testing.T) {
	// html.Parse repairs almost anything, so even fragments parse
	article, err := parser.ParseHTML(strings.Repeat("<div>", 3) + "text")
	if err != nil {
		t.Fatal(err)
	}
	assert.NotNil(t, article)
}
