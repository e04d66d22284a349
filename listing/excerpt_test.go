package listing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogboard/listing"
)

func TestExcerptStripsMarkup(t *testing.T) {
	got := listing.Excerpt("<p>Hello <b>world</b></p>")
	assert.Equal(t, "Hello world", got)
}

func TestExcerptTruncatesLongContent(t *testing.T) {
	long := "<p>" + strings.Repeat("x", 300) + "</p>"
	got := listing.Excerpt(long)
	assert.Equal(t, listing.ExcerptLength+3, len(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestExcerptEmptyInput(t *testing.T) {
	assert.Equal(t, "", listing.Excerpt(""))
	assert.Equal(t, "", listing.Excerpt("<div></div>"))
}

func TestExcerptJoinsBlocksWithSpaces(t *testing.T) {
	got := listing.ExcerptN("<p>one</p><p>two</p>", 50)
	assert.Equal(t, "one two", got)
}
