package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/coreforge/mrp/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailInUse
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubRevoker struct {
	revoked map[string]time.Time
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Time)}
}

func (s *stubRevoker) Revoke(_ context.Context, userID string, at time.Time) error {
	s.revoked[userID] = at
	return nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), "Alice", "alice@coreforge.com", "sup3rsafe", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "sup3rsafe" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sup3rsafe")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), "", "", "password", domain.RoleEmployee); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bob", "bob@coreforge.com", "password", "intern"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bob", "bob@coreforge.com", "tiny", domain.RoleEmployee); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), "Bob", "bob@coreforge.com", "password", domain.RoleEmployee); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "Bobby", "bob@coreforge.com", "password2", domain.RoleEmployee)
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
	if err.Error() != "Email já está em uso" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), "Carol", "carol@coreforge.com", "s3cret-pass", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@coreforge.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleAdmin) {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %s, got %v", user.ID, claims["sub"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	_, _, _ = svc.Register(context.Background(), "Dave", "dave@coreforge.com", "goodpass", domain.RoleEmployee)
	_, _, err := svc.Login(context.Background(), "dave@coreforge.com", "badpass")
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if err.Error() != "Senha incorreta" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@coreforge.com", "password"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	revoker := newStubRevoker()
	svc := NewAuthService(repo, revoker, "secret", time.Hour)

	_, user, err := svc.Register(context.Background(), "Eve", "eve@coreforge.com", "original-pass", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "wrong", "brand-new-pass"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword for wrong current, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), user.ID, "original-pass", "original-pass"); !errors.Is(err, domain.ErrSamePassword) {
		t.Fatalf("expected ErrSamePassword, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), user.ID, "original-pass", "tiny"); !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "original-pass", "brand-new-pass"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, ok := revoker.revoked[user.ID]; !ok {
		t.Fatalf("expected tokens to be revoked after password change")
	}

	if _, _, err := svc.Login(context.Background(), "eve@coreforge.com", "original-pass"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("old password should no longer work, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "eve@coreforge.com", "brand-new-pass"); err != nil {
		t.Fatalf("new password should work, got %v", err)
	}
}

func TestAuthService_Logout_Revokes(t *testing.T) {
	repo := newStubUserRepo()
	revoker := newStubRevoker()
	svc := NewAuthService(repo, revoker, "secret", time.Hour)

	if err := svc.Logout(context.Background(), "u-42"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := revoker.revoked["u-42"]; !ok {
		t.Fatalf("expected revocation mark for u-42")
	}
}
