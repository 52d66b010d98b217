package service

import (
	"context"
	"fmt"
	"time"

	"matchboard/internal/models"
	"matchboard/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService handles login, auto-registration and JWT issue/verify.
type AuthService struct {
	users repository.Users
	cfg   AuthConfig
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, cfg: cfg}
}

var _ Authorization = (*AuthService)(nil)

// Claims defines the JWT payload: user id plus username.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"id"`
	Username string `json:"username"`
}

// Login looks the user up by username. Unknown usernames are auto-registered.
// The stored password is only checked when VerifyPasswords is enabled; the
// default keeps the original open-door behavior.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, bool, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", false, err
	}

	if u == nil {
		created, err := s.register(ctx, username, password)
		if err != nil {
			return nil, "", false, err
		}
		token, err := s.issueToken(created)
		if err != nil {
			return nil, "", false, err
		}
		return created, token, true, nil
	}

	if s.cfg.VerifyPasswords {
		if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
			return nil, "", false, ErrInvalidPassword
		}
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", false, err
	}
	return u, token, false, nil
}

// ParseToken verifies the signature and expiry and returns the identity.
func (s *AuthService) ParseToken(accessToken string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{ID: claims.UserID, Username: claims.Username}, nil
}

// CurrentUser loads the user behind an authenticated request.
func (s *AuthService) CurrentUser(ctx context.Context, id int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AuthService) register(ctx context.Context, username, password string) (*models.User, error) {
	stored := password
	if s.cfg.VerifyPasswords && password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		stored = string(hash)
	}

	id, err := s.users.Create(ctx, username, stored)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: username, Password: stored}, nil
}

func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   u.ID,
		Username: u.Username,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}
