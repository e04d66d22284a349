package services

import (
	"context"

	"blogboard/internal/logger"
	"blogboard/dto"
	"blogboard/models"
	"blogboard/repositories"
)

// SettingsService handles per-owner preferences, newsletter opt-ins and
// account deletion.
type SettingsService struct {
	settings   *repositories.SettingsRepository
	newsletter *repositories.NewsletterRepository
	users      *repositories.UserRepository
	posts      *repositories.PostRepository
}

func NewSettingsService(
	settings *repositories.SettingsRepository,
	newsletter *repositories.NewsletterRepository,
	users *repositories.UserRepository,
	posts *repositories.PostRepository,
) *SettingsService {
	return &SettingsService{settings: settings, newsletter: newsletter, users: users, posts: posts}
}

// Get returns the owner's settings, zero-valued when never saved.
func (s *SettingsService) Get(ctx context.Context, ownerID string) (*models.UserSettings, error) {
	return s.settings.Get(ctx, ownerID)
}

// Save merges only the fields present in the request.
func (s *SettingsService) Save(ctx context.Context, ownerID string, req dto.SettingsRequest) (*models.UserSettings, error) {
	updates := map[string]interface{}{}
	if req.EmailNotifications != nil {
		updates["email_notifications"] = *req.EmailNotifications
	}
	if req.PreferredCategory != nil {
		updates["preferred_category"] = *req.PreferredCategory
	}
	if req.DefaultReadTime != nil {
		updates["default_read_time"] = *req.DefaultReadTime
	}
	if req.EditorTheme != nil {
		updates["editor_theme"] = *req.EditorTheme
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if len(updates) > 0 {
		if err := s.settings.Upsert(ctx, ownerID, updates); err != nil {
			return nil, err
		}
	}
	return s.settings.Get(ctx, ownerID)
}

// Profile returns the signed-in account document.
func (s *SettingsService) Profile(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// UpdateProfile merges only the fields present in the request and returns
// the updated document.
func (s *SettingsService) UpdateProfile(ctx context.Context, email string, req dto.ProfileRequest) (*models.User, error) {
	if updates := profileUpdates(req); len(updates) > 0 {
		if err := s.users.UpdateProfile(ctx, email, updates); err != nil {
			return nil, err
		}
	}
	return s.users.FindByEmail(ctx, email)
}

func profileUpdates(req dto.ProfileRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	return updates
}

// Subscribe opts an email into the newsletter.
func (s *SettingsService) Subscribe(ctx context.Context, email string) error {
	return s.newsletter.Subscribe(ctx, email)
}

// Unsubscribe opts an email out of the newsletter.
func (s *SettingsService) Unsubscribe(ctx context.Context, email string) error {
	return s.newsletter.Unsubscribe(ctx, email)
}

// DeleteAccount removes the account, its settings and its newsletter opt-in
// and soft-deletes every post so the public site stops serving them. The
// post documents stay for recovery.
func (s *SettingsService) DeleteAccount(ctx context.Context, ownerID, email string) error {
	if err := s.posts.SoftDeleteByOwner(ctx, ownerID); err != nil {
		return err
	}
	if err := s.settings.Delete(ctx, ownerID); err != nil {
		return err
	}
	if err := s.newsletter.Unsubscribe(ctx, email); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, email); err != nil {
		return err
	}
	logger.Log.Infof("account deleted: owner_id=%s", ownerID)
	return nil
}
