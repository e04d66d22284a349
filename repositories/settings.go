package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogboard/models"
)

type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection("user_settings")}
}

// Upsert merges the given preference fields into the owner's settings
// document, creating it on first write.
func (r *SettingsRepository) Upsert(ctx context.Context, ownerID string, updates map[string]interface{}) error {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		switch k {
		case "owner_id", "_id":
			continue
		}
		set[k] = v
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"owner_id": ownerID}, bson.M{
		"$setOnInsert": bson.M{"owner_id": ownerID},
		"$set":         set,
	}, opts)
	return err
}

// Get returns the owner's settings, or a zero-valued document when none
// has been written yet.
func (r *SettingsRepository) Get(ctx context.Context, ownerID string) (*models.UserSettings, error) {
	var s models.UserSettings
	err := r.col.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return &models.UserSettings{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the owner's settings document. Missing documents are not
// an error so account deletion stays idempotent.
func (r *SettingsRepository) Delete(ctx context.Context, ownerID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"owner_id": ownerID})
	return err
}
