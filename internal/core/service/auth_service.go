package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/coreforge/mrp/internal/core/domain"
	"github.com/coreforge/mrp/internal/core/ports"
)

const minPasswordLength = 6

// TokenRevoker abstracts the revocation denylist (Redis). Marking a
// principal at time `at` invalidates every token issued at or before it.
type TokenRevoker interface {
	Revoke(ctx context.Context, userID string, at time.Time) error
}

// AuthService implements registration, login, and credential changes.
type AuthService struct {
	repo      ports.UserRepository
	revoker   TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, revoker TokenRevoker, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (string, *domain.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}
	if !role.Valid() {
		return "", nil, domain.ErrInvalidRole
	}
	if len(password) < minPasswordLength {
		return "", nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrWrongPassword
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePassword swaps the stored hash and revokes every token issued before
// the change, so a leaked credential stops working immediately.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if len(next) < minPasswordLength {
		return domain.ErrPasswordTooShort
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrWrongPassword
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(next)) == nil {
		return domain.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	return s.revoker.Revoke(ctx, user.ID, time.Now().UTC())
}

// Logout revokes all tokens issued to the principal up to now.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.revoker.Revoke(ctx, userID, time.Now().UTC())
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
