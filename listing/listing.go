package listing

import (
	"strings"

	"blogboard/models"
)

// Visibility selects which statuses a view may show. Soft-deleted posts are
// excluded from every view regardless of visibility.
type Visibility int

const (
	// PublicOnly shows published posts only (public listing pages).
	PublicOnly Visibility = iota
	// OwnerDashboard shows all of the owner's posts regardless of status.
	OwnerDashboard
)

// Visible drops soft-deleted posts and applies the visibility rule.
func Visible(posts []models.Post, v Visibility) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.IsDeleted {
			continue
		}
		if v == PublicOnly && p.Status != models.StatusPublished {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterByTitle keeps posts whose title contains search, case-insensitively.
// Only the title is matched; body content never affects the result. An empty
// search keeps everything.
func FilterByTitle(posts []models.Post, search string) []models.Post {
	if search == "" {
		return posts
	}
	needle := strings.ToLower(search)
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Project is the full view-model pipeline: visibility filter then title
// search. It is a pure synchronous projection and is recomputed on every
// snapshot push and every search keystroke.
func Project(posts []models.Post, v Visibility, search string) []models.Post {
	return FilterByTitle(Visible(posts, v), search)
}

// Uncategorized is the bucket for posts without a category.
const Uncategorized = "Uncategorized"

// CategoryGroup is one category bucket of a grouped view.
type CategoryGroup struct {
	Category string
	Posts    []models.Post
}

// GroupByCategory partitions posts by category, preserving the order in
// which categories are first seen. Posts without a category land in the
// Uncategorized bucket.
func GroupByCategory(posts []models.Post) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, p := range posts {
		cat := p.Category
		if cat == "" {
			cat = Uncategorized
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryGroup{Category: cat})
		}
		groups[i].Posts = append(groups[i].Posts, p)
	}
	return groups
}

// DefaultPageSize is the dashboard page size.
const DefaultPageSize = 6

// Page is one slice of a paginated view. PageNum is 1-based and already
// clamped into the valid range.
type Page struct {
	Items      []models.Post
	PageNum    int
	PageSize   int
	Total      int
	TotalPages int
}

// Paginate slices posts into fixed-size pages. The page number clamps on
// both ends: values below 1 become 1, and advancing past the last page
// returns the last valid page instead of an empty overflow page.
func Paginate(posts []models.Post, pageNum, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(posts)
	totalPages := (total + pageSize - 1) / pageSize

	if pageNum < 1 {
		pageNum = 1
	}
	if totalPages == 0 {
		pageNum = 1
	} else if pageNum > totalPages {
		pageNum = totalPages
	}

	start := (pageNum - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      posts[start:end],
		PageNum:    pageNum,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Overview summarizes an owner's posts for the dashboard header.
type Overview struct {
	Total      int
	Published  int
	Drafts     int
	Categories []string
	Tags       []string
}

// Summarize counts the owner's live posts and collects the distinct
// categories and tags in first-seen order. Soft-deleted posts are skipped.
func Summarize(posts []models.Post) Overview {
	var o Overview
	seenCat := make(map[string]bool)
	seenTag := make(map[string]bool)
	for _, p := range posts {
		if p.IsDeleted {
			continue
		}
		o.Total++
		if p.Status == models.StatusDraft {
			o.Drafts++
		} else {
			o.Published++
		}
		if p.Category != "" && !seenCat[p.Category] {
			seenCat[p.Category] = true
			o.Categories = append(o.Categories, p.Category)
		}
		for _, tag := range p.Tags {
			if tag != "" && !seenTag[tag] {
				seenTag[tag] = true
				o.Tags = append(o.Tags, tag)
			}
		}
	}
	return o
}
