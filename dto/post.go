package dto

import (
	"time"

	"blogboard/listing"
	"blogboard/models"
)

// PostDTO exposes the fields API consumers need. ID is the hex string of
// the ObjectID to keep transport simple; is_deleted never leaves the server
// because deleted posts are filtered out before projection.
type PostDTO struct {
	ID                string    `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Title             string    `json:"title"`
	Category          string    `json:"category"`
	Tags              []string  `json:"tags"`
	Content           string    `json:"content,omitempty"`
	ShortDescription  string    `json:"short_description"`
	EstimatedReadTime string    `json:"estimated_read_time"`
	Author            string    `json:"author"`
	AuthorEmail       string    `json:"author_email"`
	Status            string    `json:"status"`
	Excerpt           string    `json:"excerpt"`
}

// NewPostDTO constructs PostDTO from models.Post including full content.
func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		ID:                p.ID.Hex(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		Title:             p.Title,
		Category:          p.Category,
		Tags:              p.Tags,
		Content:           p.Content,
		ShortDescription:  p.ShortDescription,
		EstimatedReadTime: p.EstimatedReadTime,
		Author:            p.Author,
		AuthorEmail:       p.AuthorEmail,
		Status:            string(p.Status),
		Excerpt:           listing.Excerpt(p.Content),
	}
}

// NewPostCardDTO is the listing form of NewPostDTO: excerpt only, content
// omitted to keep list payloads small.
func NewPostCardDTO(p models.Post) PostDTO {
	d := NewPostDTO(p)
	d.Content = ""
	return d
}

// NewPostDTOs maps a post slice into card DTOs.
func NewPostDTOs(posts []models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostCardDTO(p))
	}
	return out
}
