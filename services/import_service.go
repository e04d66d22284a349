package services

import (
	"context"
	"fmt"

	"blogboard/internal/logger"
	"blogboard/editor"
	"blogboard/feeder"
	"blogboard/listing"
	"blogboard/models"
	"blogboard/parser"
	"blogboard/renderer"
)

// ImportedCategory is the bucket imported drafts land in until the author
// recategorizes them.
const ImportedCategory = "Imported"

// ImportResult reports what one feed import did.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportService pulls items from an RSS or Atom feed and stores them as
// drafts owned by the requesting author. When fetchContent is enabled each
// item's page is rendered in headless Chrome and reduced to its readable
// article, because client-rendered blogs serve empty feed bodies.
type ImportService struct {
	writer       editor.PostWriter
	maxItems     int
	fetchContent bool
}

func NewImportService(writer editor.PostWriter, maxItems int, fetchContent bool) *ImportService {
	if maxItems <= 0 {
		maxItems = 10
	}
	return &ImportService{writer: writer, maxItems: maxItems, fetchContent: fetchContent}
}

// ImportOptions overrides the service defaults per request.
type ImportOptions struct {
	FeedURL      string
	MaxItems     int
	FetchContent *bool
}

// Import runs the pipeline. Item failures are collected, not fatal: a feed
// with one broken entry still imports the rest.
func (s *ImportService) Import(ctx context.Context, owner ImportOwner, opts ImportOptions) (ImportResult, error) {
	maxItems := opts.MaxItems
	if maxItems <= 0 || maxItems > s.maxItems {
		maxItems = s.maxItems
	}
	fetchContent := s.fetchContent
	if opts.FetchContent != nil {
		fetchContent = *opts.FetchContent
	}

	items, err := feeder.Fetch(opts.FeedURL, maxItems)
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if item.Title == "" || item.Link == "" {
			result.Skipped++
			continue
		}

		post, err := s.buildDraft(item, owner, fetchContent)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.Link, err))
			continue
		}

		if _, err := s.writer.Create(ctx, post); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", item.Link, err))
			continue
		}
		result.Imported++
	}

	logger.Log.Infof("feed import finished: url=%s imported=%d skipped=%d errors=%d",
		opts.FeedURL, result.Imported, result.Skipped, len(result.Errors))
	return result, nil
}

// ImportOwner identifies the author the drafts belong to.
type ImportOwner struct {
	ID    string
	Name  string
	Email string
}

func (s *ImportService) buildDraft(item feeder.FeedItem, owner ImportOwner, fetchContent bool) (models.Post, error) {
	content := item.Content
	if content == "" {
		content = item.Description
	}
	shortDesc := listing.Excerpt(item.Description)

	if fetchContent {
		rendered, err := renderer.RenderHTML(item.Link)
		if err != nil {
			return models.Post{}, fmt.Errorf("render failed: %w", err)
		}
		article, err := parser.ParseHTML(rendered)
		if err != nil {
			return models.Post{}, fmt.Errorf("parse failed: %w", err)
		}
		if article.HTMLContent != "" {
			content = article.HTMLContent
		}
		if article.Excerpt != "" {
			shortDesc = article.Excerpt
		}
	}

	return models.Post{
		Title:            item.Title,
		Category:         ImportedCategory,
		Content:          content,
		ShortDescription: shortDesc,
		Author:           owner.Name,
		AuthorEmail:      owner.Email,
		AuthorID:         owner.ID,
		Status:           models.StatusDraft,
		IsDeleted:        false,
	}, nil
}
