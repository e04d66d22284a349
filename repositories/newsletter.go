package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogboard/models"
)

type NewsletterRepository struct {
	col *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) *NewsletterRepository {
	return &NewsletterRepository{col: db.Collection("newsletter")}
}

// Subscribe records an opt-in keyed by email. Re-subscribing keeps the
// original subscribed_at.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$setOnInsert": bson.M{
			"email":         email,
			"subscribed_at": time.Now(),
		},
	}, opts)
	return err
}

// Unsubscribe removes the opt-in for an email.
func (r *NewsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"email": email})
	return err
}

// ListEmails returns every subscribed email.
func (r *NewsletterRepository) ListEmails(ctx context.Context) ([]string, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var emails []string
	for cur.Next(ctx) {
		var s models.NewsletterSubscription
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		emails = append(emails, s.Email)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return emails, nil
}
