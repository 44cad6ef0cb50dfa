package auth

import (
	"errors"
	"testing"

	"studyscape/pkg/models"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uuid.UUID]*models.User),
	}
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(newFakeUserRepo())

	resp, err := svc.Register(models.RegisterRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
		Name:     "Ada",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected tokens in register response")
	}
	if resp.User.Password != "" && resp.User.Password == "correct-horse" {
		t.Error("password stored in plaintext")
	}

	// Duplicate registration must fail.
	if _, err := svc.Register(models.RegisterRequest{Email: "ada@example.com", Password: "x", Name: "X"}); err == nil {
		t.Error("expected error for duplicate email")
	}

	login, err := svc.Login(LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := svc.ValidateToken(login.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Email != "ada@example.com" || claims.Type != "access" {
		t.Errorf("unexpected claims: email=%q type=%q", claims.Email, claims.Type)
	}

	if _, err := svc.Login(LoginRequest{Email: "ada@example.com", Password: "wrong"}); err == nil {
		t.Error("expected error for wrong password")
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(newFakeUserRepo())
	resp, err := svc.Register(models.RegisterRequest{Email: "b@example.com", Password: "password1", Name: "B"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.RefreshToken(resp.AccessToken); err == nil {
		t.Error("expected error when refreshing with an access token")
	}

	refreshed, err := svc.RefreshToken(resp.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("expected new access token")
	}
}
