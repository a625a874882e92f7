package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"micoach/coaching-app/internal/repository"
)

func newTestAuthService(t *testing.T) (AuthService, *inMemoryKV) {
	t.Helper()
	kv := newInMemoryKV()
	return NewAuthService(repository.NewStateStore(kv), "test-secret", time.Hour), kv
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ana", "ana@example.com", "super-secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Errorf("registered user has no id")
	}
	if user.PasswordHash != "" {
		t.Errorf("password hash leaked in the returned user")
	}

	token, logged, err := svc.Login(ctx, "ana@example.com", "super-secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Errorf("expected a JWT")
	}
	if logged.ID != user.ID {
		t.Errorf("login returned a different user")
	}
}

func TestRegisterTwiceConflicts(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "super-secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "Ben", "ben@example.com", "other-secret")
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("second Register = %v, want ErrUserAlreadyExists", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("login without account = %v, want ErrAuthenticationFailed", err)
	}

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "super-secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "ana@example.com", "wrong"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("login with wrong password = %v, want ErrAuthenticationFailed", err)
	}
	if _, _, err := svc.Login(ctx, "other@example.com", "super-secret"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("login with wrong email = %v, want ErrAuthenticationFailed", err)
	}
}
