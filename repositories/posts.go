package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogboard/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// Insert creates a new post document and returns its generated id.
// created_at is written through $setOnInsert so a racing upsert can never
// re-stamp it.
func (r *PostRepository) Insert(ctx context.Context, p models.Post) (string, error) {
	now := time.Now()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Status == "" {
		p.Status = models.StatusDraft
	}

	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": now,
		},
		"$set": bson.M{
			"updated_at":          now,
			"title":               p.Title,
			"category":            p.Category,
			"tags":                p.Tags,
			"content":             p.Content,
			"short_description":   p.ShortDescription,
			"estimated_read_time": p.EstimatedReadTime,
			"author":              p.Author,
			"author_email":        p.AuthorEmail,
			"author_id":           p.AuthorID,
			"status":              p.Status,
			"is_deleted":          p.IsDeleted,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.col.UpdateByID(ctx, p.ID, update, opts); err != nil {
		return "", err
	}
	return p.ID.Hex(), nil
}

// UpdateFields merges the given fields into a post and re-stamps updated_at.
// created_at, author_id and is_deleted never pass through here.
func (r *PostRepository) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		switch k {
		case "created_at", "author_id", "is_deleted", "_id":
			continue
		}
		set[k] = v
	}
	_, err = r.col.UpdateByID(ctx, oid, bson.M{"$set": set})
	return err
}

// SoftDelete flags a post as deleted without removing the document.
func (r *PostRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.col.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"is_deleted": true, "updated_at": time.Now()},
	})
	return err
}

// SoftDeleteByOwner flags every post of one author as deleted. Used by
// account deletion so the public site stops serving them immediately.
func (r *PostRepository) SoftDeleteByOwner(ctx context.Context, ownerID string) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"author_id": ownerID}, bson.M{
		"$set": bson.M{"is_deleted": true, "updated_at": time.Now()},
	})
	return err
}

// FindByID returns a post by its ObjectID hex.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByOwner returns all posts of one author, newest first. Soft-deleted
// posts are filtered out by the read side, not here, so an undelete tool
// keeps working against the same query.
func (r *PostRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	return r.list(ctx, bson.M{"author_id": ownerID})
}

// ListAll returns every post in the collection, newest first.
func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	return r.list(ctx, bson.M{})
}

func (r *PostRepository) list(ctx context.Context, filter bson.M) ([]models.Post, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Post
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
