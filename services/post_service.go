package services

import (
	"context"
	"errors"

	"blogboard/internal/logger"
	"blogboard/dto"
	"blogboard/editor"
	"blogboard/eventbus"
	"blogboard/events"
	"blogboard/listing"
	"blogboard/models"
	"blogboard/repositories"
)

// ErrNotOwner is returned when a write targets a post the caller does not own.
var ErrNotOwner = errors.New("post belongs to another author")

// ErrNotFound is returned for missing or soft-deleted posts.
var ErrNotFound = errors.New("post not found")

// PostService encapsulates post business logic and DTO mapping. It also
// implements editor.PostWriter so the authoring form persists through it,
// which is where lifecycle events are published.
type PostService struct {
	repo     *repositories.PostRepository
	bus      eventbus.EventBus
	pageSize int
}

// NewPostService builds a PostService. bus may be nil when event publishing
// is not wanted (tests, local tooling).
func NewPostService(repo *repositories.PostRepository, bus eventbus.EventBus, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	return &PostService{repo: repo, bus: bus, pageSize: pageSize}
}

// ListOwn returns one page of the author's dashboard listing, newest first.
// All statuses are visible to the owner; soft-deleted posts are not.
func (s *PostService) ListOwn(ctx context.Context, ownerID, search string, page int) (dto.PaginationPostDTO, error) {
	posts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return dto.PaginationPostDTO{}, err
	}
	return s.paginate(listing.Project(posts, listing.OwnerDashboard, search), page), nil
}

// ListPublic returns one page of the public listing: published posts only.
func (s *PostService) ListPublic(ctx context.Context, search string, page int) (dto.PaginationPostDTO, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		return dto.PaginationPostDTO{}, err
	}
	return s.paginate(listing.Project(posts, listing.PublicOnly, search), page), nil
}

// ListPublicGrouped returns the public listing partitioned by category in
// first-seen order.
func (s *PostService) ListPublicGrouped(ctx context.Context) ([]dto.CategoryGroupDTO, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	groups := listing.GroupByCategory(listing.Visible(posts, listing.PublicOnly))
	out := make([]dto.CategoryGroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategoryGroupDTO{
			Category: g.Category,
			Posts:    dto.NewPostDTOs(g.Posts),
		})
	}
	return out, nil
}

// Overview summarizes the author's live posts.
func (s *PostService) Overview(ctx context.Context, ownerID string) (dto.OverviewDTO, error) {
	posts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return dto.OverviewDTO{}, err
	}
	o := listing.Summarize(posts)
	return dto.OverviewDTO{
		Total:      o.Total,
		Published:  o.Published,
		Drafts:     o.Drafts,
		Categories: o.Categories,
		Tags:       o.Tags,
	}, nil
}

// GetOwn loads one of the author's posts with full content for editing.
func (s *PostService) GetOwn(ctx context.Context, ownerID, id string) (*models.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if p.IsDeleted {
		return nil, ErrNotFound
	}
	if p.AuthorID != ownerID {
		return nil, ErrNotOwner
	}
	return p, nil
}

// GetPublic loads one published post with full content.
func (s *PostService) GetPublic(ctx context.Context, id string) (*dto.PostDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if p.IsDeleted || p.Status != models.StatusPublished {
		return nil, ErrNotFound
	}
	d := dto.NewPostDTO(*p)
	return &d, nil
}

// Create implements editor.PostWriter.
func (s *PostService) Create(ctx context.Context, post models.Post) (string, error) {
	id, err := s.repo.Insert(ctx, post)
	if err != nil {
		return "", err
	}
	s.publish(ctx, events.PostCreated, id, post.AuthorID, post.Author, post.Title, post.Category, string(post.Status), post.ShortDescription)
	if post.Status == models.StatusPublished {
		s.publish(ctx, events.PostPublished, id, post.AuthorID, post.Author, post.Title, post.Category, string(post.Status), post.ShortDescription)
	}
	return id, nil
}

// Update implements editor.PostWriter. The prior document is read first so
// the publish announcement fires only on the draft -> published transition,
// not on every save of an already-published post.
func (s *PostService) Update(ctx context.Context, id string, fields map[string]any) error {
	var prevStatus models.PostStatus
	authorID, author := "", ""
	if prev, err := s.repo.FindByID(ctx, id); err == nil {
		prevStatus = prev.Status
		authorID, author = prev.AuthorID, prev.Author
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	title, _ := fields["title"].(string)
	category, _ := fields["category"].(string)
	status, _ := fields["status"].(models.PostStatus)
	shortDesc, _ := fields["short_description"].(string)
	s.publish(ctx, events.PostUpdated, id, authorID, author, title, category, string(status), shortDesc)
	if announcesPublish(prevStatus, status) {
		s.publish(ctx, events.PostPublished, id, authorID, author, title, category, string(status), shortDesc)
	}
	return nil
}

// announcesPublish reports whether a status change should fan out the
// published announcement. Re-saving an already-published post must not
// notify subscribers again.
func announcesPublish(prev, next models.PostStatus) bool {
	return next == models.StatusPublished && prev != models.StatusPublished
}

// SoftDelete flags an owned post as deleted.
func (s *PostService) SoftDelete(ctx context.Context, ownerID, id string) error {
	p, err := s.GetOwn(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.PostDeleted, id, p.AuthorID, p.Author, p.Title, p.Category, string(p.Status), "")
	return nil
}

// ExportMarkdown renders an owned post as a downloadable markdown document.
func (s *PostService) ExportMarkdown(ctx context.Context, ownerID, id string) (dto.MarkdownExportDTO, error) {
	p, err := s.GetOwn(ctx, ownerID, id)
	if err != nil {
		return dto.MarkdownExportDTO{}, err
	}
	name, content := editor.ExportMarkdown(editor.Fields{
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
	})
	return dto.MarkdownExportDTO{Filename: name, Content: content}, nil
}

// WatchOwn streams dashboard snapshots for one author.
func (s *PostService) WatchOwn(ctx context.Context, ownerID string) (<-chan []models.Post, error) {
	return s.repo.WatchByOwner(ctx, ownerID)
}

func (s *PostService) paginate(posts []models.Post, page int) dto.PaginationPostDTO {
	pg := listing.Paginate(posts, page, s.pageSize)
	return dto.PaginationPostDTO{
		Data:       dto.NewPostDTOs(pg.Items),
		Page:       pg.PageNum,
		PageSize:   pg.PageSize,
		Total:      pg.Total,
		TotalPages: pg.TotalPages,
	}
}

// publish sends a lifecycle event, best effort. A bus failure never fails
// the write that triggered it.
func (s *PostService) publish(ctx context.Context, t events.EventType, postID, authorID, author, title, category, status, shortDesc string) {
	if s.bus == nil {
		return
	}
	payload := events.PostEvent{
		BaseEvent: events.NewPostEvent(t, "api"),
		PostID:    postID,
		AuthorID:  authorID,
		Author:    author,
		Title:     title,
		Category:  category,
		Status:    status,
		ShortDesc: shortDesc,
	}
	evt, err := eventbus.NewJSONEvent(payload.ID, payload, 0)
	if err != nil {
		logger.Log.Errorf("post event encode failed: %v", err)
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicPostEvents.Base(), evt); err != nil {
		logger.Log.Errorf("post event publish failed: %v", err)
	}
}
