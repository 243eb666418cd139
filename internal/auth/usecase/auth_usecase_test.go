package usecase_test

import (
	"testing"
	"time"

	authdomain "gympass-backend/internal/auth/domain"
	authdto "gympass-backend/internal/auth/dto"
	"gympass-backend/internal/auth/repository"
	"gympass-backend/internal/auth/usecase"
	"gympass-backend/pkg/config"
)

type fakeUserRepo struct {
	users map[string]*authdomain.User // by ID
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.users[id], nil
}

func newTestAuth(t *testing.T) (usecase.AuthUsecase, *fakeUserRepo) {
	t.Helper()
	hash, err := repository.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]*authdomain.User{
		"user-1": {ID: "user-1", Email: "m@example.com", Password: hash, FullName: "M"},
	}}
	cfg := &config.Config{
		JWTSecret:     "test-secret-which-is-long-enough!",
		SessionExpiry: time.Hour,
	}
	return usecase.NewAuthUsecase(repo, cfg), repo
}

func TestLogin_IssuesValidSession(t *testing.T) {
	auth, _ := newTestAuth(t)

	resp, err := auth.Login(&authdto.LoginRequest{Email: "m@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected a session token")
	}

	user, err := auth.ValidateSession(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateSession: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("expected user-1, got %q", user.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, _ := newTestAuth(t)

	if _, err := auth.Login(&authdto.LoginRequest{Email: "m@example.com", Password: "wrong"}); err == nil {
		t.Fatal("expected login to fail")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth, _ := newTestAuth(t)

	if _, err := auth.Login(&authdto.LoginRequest{Email: "x@example.com", Password: "correct horse"}); err == nil {
		t.Fatal("expected login to fail")
	}
}

func TestValidateSession_Garbage(t *testing.T) {
	auth, _ := newTestAuth(t)

	if _, err := auth.ValidateSession("not-a-token"); err == nil {
		t.Fatal("expected validation to fail")
	}
}
