package listing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogboard/listing"
	"blogboard/models"
)

func post(title, category string, status models.PostStatus, deleted bool) models.Post {
	return models.Post{
		Title:    title,
		Category: category,
		Status:   status,
		IsDeleted: deleted,
	}
}

func TestVisibleExcludesSoftDeletedEverywhere(t *testing.T) {
	posts := []models.Post{
		post("kept", "Dev", models.StatusPublished, false),
		post("gone published", "Dev", models.StatusPublished, true),
		post("gone draft", "Dev", models.StatusDraft, true),
	}

	for _, v := range []listing.Visibility{listing.PublicOnly, listing.OwnerDashboard} {
		got := listing.Visible(posts, v)
		assert.Len(t, got, 1)
		assert.Equal(t, "kept", got[0].Title)
	}

	// deleted posts also never reach grouped or paginated views
	groups := listing.GroupByCategory(listing.Visible(posts, listing.OwnerDashboard))
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Posts, 1)

	page := listing.Paginate(listing.Visible(posts, listing.OwnerDashboard), 1, 6)
	assert.Len(t, page.Items, 1)
}

func TestVisiblePublicShowsPublishedOnly(t *testing.T) {
	posts := []models.Post{
		post("a", "Dev", models.StatusPublished, false),
		post("b", "Dev", models.StatusDraft, false),
		post("c", "Dev", models.StatusError, false),
	}

	got := listing.Visible(posts, listing.PublicOnly)
	assert.Len(t, got, 1)
	assert.Equal(t, models.StatusPublished, got[0].Status)

	// the owner's dashboard shows every live post regardless of status
	assert.Len(t, listing.Visible(posts, listing.OwnerDashboard), 3)
}

func TestFilterByTitleIsCaseInsensitiveSubstring(t *testing.T) {
	posts := []models.Post{
		{Title: "Category Guide", Content: "<p>cat lovers</p>"},
		{Title: "Other", Content: "<p>cat cat cat</p>"},
	}

	got := listing.FilterByTitle(posts, "cat")
	assert.Len(t, got, 1)
	assert.Equal(t, "Category Guide", got[0].Title)

	// body content never matches
	assert.Empty(t, listing.FilterByTitle(posts[1:], "cat"))

	// empty search keeps everything
	assert.Len(t, listing.FilterByTitle(posts, ""), 2)
}

func TestGroupByCategoryFirstSeenOrder(t *testing.T) {
	posts := []models.Post{
		post("1", "Go", models.StatusPublished, false),
		post("2", "", models.StatusPublished, false),
		post("3", "Web", models.StatusPublished, false),
		post("4", "Go", models.StatusPublished, false),
	}

	groups := listing.GroupByCategory(posts)
	assert.Len(t, groups, 3)
	assert.Equal(t, "Go", groups[0].Category)
	assert.Equal(t, listing.Uncategorized, groups[1].Category)
	assert.Equal(t, "Web", groups[2].Category)
	assert.Len(t, groups[0].Posts, 2)
}

func TestPaginateSlicesAndClamps(t *testing.T) {
	var posts []models.Post
	for i := 0; i < 14; i++ {
		posts = append(posts, post(fmt.Sprintf("p%02d", i), "Dev", models.StatusPublished, false))
	}

	p1 := listing.Paginate(posts, 1, 6)
	assert.Len(t, p1.Items, 6)
	assert.Equal(t, "p00", p1.Items[0].Title)
	assert.Equal(t, 3, p1.TotalPages)

	p3 := listing.Paginate(posts, 3, 6)
	assert.Len(t, p3.Items, 2)
	assert.Equal(t, "p12", p3.Items[0].Title)

	// advancing past the last page is a no-op: same last valid page
	p9 := listing.Paginate(posts, 9, 6)
	assert.Equal(t, 3, p9.PageNum)
	assert.Equal(t, p3.Items, p9.Items)

	// page numbers below 1 clamp up
	p0 := listing.Paginate(posts, 0, 6)
	assert.Equal(t, 1, p0.PageNum)
}

func TestPaginateEmptyInput(t *testing.T) {
	p := listing.Paginate(nil, 5, 6)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.PageNum)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.TotalPages)
}

func TestSummarizeCountsAndCollects(t *testing.T) {
	posts := []models.Post{
		{Title: "a", Category: "Go", Tags: []string{"go", "web"}, Status: models.StatusPublished},
		{Title: "b", Category: "Go", Tags: []string{"go"}, Status: models.StatusDraft},
		{Title: "c", Category: "Web", Status: models.StatusPublished},
		{Title: "d", Category: "Gone", Status: models.StatusPublished, IsDeleted: true},
	}

	o := listing.Summarize(posts)
	assert.Equal(t, 3, o.Total)
	assert.Equal(t, 2, o.Published)
	assert.Equal(t, 1, o.Drafts)
	assert.Equal(t, []string{"Go", "Web"}, o.Categories)
	assert.Equal(t, []string{"go", "web"}, o.Tags)
}
