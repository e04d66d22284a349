package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserSettings holds per-owner preferences
// Collection: user_settings (one document per owner)
type UserSettings struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID            string             `bson:"owner_id" json:"owner_id"`
	EmailNotifications bool               `bson:"email_notifications" json:"email_notifications"`
	PreferredCategory  string             `bson:"preferred_category" json:"preferred_category"`
	DefaultReadTime    string             `bson:"default_read_time" json:"default_read_time"`
	EditorTheme        string             `bson:"editor_theme" json:"editor_theme"`
	Bio                string             `bson:"bio" json:"bio"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewsletterSubscription represents a newsletter opt-in
// Collection: newsletter (one document per email)
type NewsletterSubscription struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	SubscribedAt time.Time          `bson:"subscribed_at" json:"subscribed_at"`
}
