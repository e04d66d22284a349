package feeder_test

import (
	"strings"
	"testing"

	"blogboard/feeder"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Blog</title>
    <item>
      <title>First post</title>
      <link>https://example.com/first</link>
      <description>intro text</description>
      <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
    </item>
    <item>
      <title>Second post</title>
      <link>https://example.com/second</link>
      <description>more text</description>
      <pubDate>Tue, 03 Jan 2006 15:04:05 GMT</pubDate>
    </item>
    <item>
      <title>Third post</title>
      <link>https://example.com/third</link>
      <description>even more</description>
    </item>
  </channel>
</rss>`

func TestParse(t *testing.T) {
	items, err := feeder.Parse(strings.NewReader(sampleRSS), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Title != "First post" || items[0].Link != "https://example.com/first" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[0].PublishedAt.IsZero() {
		t.Fatal("expected parsed pubDate")
	}
	if !items[2].PublishedAt.IsZero() {
		t.Fatal("expected zero time for item without pubDate")
	}
}

func TestParseLimit(t *testing.T) {
	items, err := feeder.Parse(strings.NewReader(sampleRSS), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestParseStripsControlCharacters(t *testing.T) {
	dirty := strings.Replace(sampleRSS, "intro text", "intro\x1Btext", 1)
	items, err := feeder.Parse(strings.NewReader(dirty), 0)
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Description != "introtext" {
		t.Fatalf("control characters not stripped: %q", items[0].Description)
	}
}
