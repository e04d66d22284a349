package dto

// PostRequest is the write payload for create and update. Tags arrive as
// the raw comma-separated editor input.
// swagger:model PostRequest
type PostRequest struct {
	Title             string `json:"title"`
	Category          string `json:"category"`
	Tags              string `json:"tags"`
	Content           string `json:"content"`
	ShortDescription  string `json:"short_description"`
	EstimatedReadTime string `json:"estimated_read_time"`
	Status            string `json:"status"`
}

// RegisterRequest creates an account.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest exchanges credentials for a token.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the signed JWT.
// swagger:model TokenResponse
type TokenResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SettingsRequest merges preference fields; nil pointers are left untouched.
// swagger:model SettingsRequest
type SettingsRequest struct {
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	PreferredCategory  *string `json:"preferred_category,omitempty"`
	DefaultReadTime    *string `json:"default_read_time,omitempty"`
	EditorTheme        *string `json:"editor_theme,omitempty"`
	Bio                *string `json:"bio,omitempty"`
}

// NewsletterRequest opts an email in or out.
// ProfileRequest merges display fields onto the account; nil pointers are
// left untouched. Email and password do not change through here.
// swagger:model ProfileRequest
type ProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// swagger:model NewsletterRequest
type NewsletterRequest struct {
	Email string `json:"email" binding:"required"`
}

// ContactRequest is relayed to the external form endpoint.
// swagger:model ContactRequest
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ImportRequest pulls drafts from an RSS or Atom feed.
// swagger:model ImportRequest
type ImportRequest struct {
	FeedURL      string `json:"feed_url" binding:"required"`
	MaxItems     int    `json:"max_items,omitempty"`
	FetchContent *bool  `json:"fetch_content,omitempty"`
}

// SuggestRequest asks for a generated short description of the content.
// swagger:model SuggestRequest
type SuggestRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// SuggestResponse carries the generated short description.
// swagger:model SuggestResponse
type SuggestResponse struct {
	ShortDescription  string `json:"short_description"`
	EstimatedReadTime string `json:"estimated_read_time"`
}

// MarkdownExportDTO is the download payload of a post exported as markdown.
// swagger:model MarkdownExportDTO
type MarkdownExportDTO struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
