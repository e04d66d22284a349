package services

import (
	"context"

	"blogboard/auth"
	"blogboard/dto"
	"blogboard/repositories"
)

// AuthService exchanges credentials for signed tokens backed by the local
// user store. Successful sign-ins are published on the session watcher so
// in-process consumers can follow the live identity.
type AuthService struct {
	users    *repositories.UserRepository
	jwt      *auth.JWTManager
	sessions *auth.SessionWatcher
}

// NewAuthService builds the service. sessions may be nil when no consumer
// follows the identity stream.
func NewAuthService(users *repositories.UserRepository, jwt *auth.JWTManager, sessions *auth.SessionWatcher) *AuthService {
	return &AuthService{users: users, jwt: jwt, sessions: sessions}
}

// Register creates the account and signs it in immediately.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.TokenResponse, error) {
	u, err := s.users.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return s.tokenFor(u.ID.Hex(), u.Name, u.Email, u.AvatarURL)
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error) {
	u, err := s.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return s.tokenFor(u.ID.Hex(), u.Name, u.Email, u.AvatarURL)
}

func (s *AuthService) tokenFor(id, name, email, avatarURL string) (dto.TokenResponse, error) {
	ident := auth.Identity{ID: id, Name: name, Email: email, AvatarURL: avatarURL}
	token, err := s.jwt.Sign(ident)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	if s.sessions != nil {
		s.sessions.SignIn(ident)
	}
	return dto.TokenResponse{Token: token, Name: name, Email: email}, nil
}
