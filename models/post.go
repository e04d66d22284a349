package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostStatus is the user-driven publication state of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusError     PostStatus = "error"
)

// Valid reports whether s is one of the known statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusError:
		return true
	}
	return false
}

// Post represents an authored blog post document
// Collection: posts
//
// CreatedAt is set once at insert and never re-stamped; UpdatedAt moves on
// every write. IsDeleted only ever goes false -> true (soft delete).
type Post struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
	Title             string             `bson:"title" json:"title"`
	Category          string             `bson:"category" json:"category"`
	Tags              []string           `bson:"tags" json:"tags"`
	Content           string             `bson:"content" json:"content"`
	ShortDescription  string             `bson:"short_description" json:"short_description"`
	EstimatedReadTime string             `bson:"estimated_read_time" json:"estimated_read_time"`
	Author            string             `bson:"author" json:"author"`
	AuthorEmail       string             `bson:"author_email" json:"author_email"`
	AuthorID          string             `bson:"author_id" json:"author_id"`
	Status            PostStatus         `bson:"status" json:"status"`
	IsDeleted         bool               `bson:"is_deleted" json:"is_deleted"`
}
