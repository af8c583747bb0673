package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
	"github.com/akshayp/cetadvisor/internal/pkg/auth"
)

type fakeAdminFinder struct {
	users map[string]*models.AdminUser
}

func (f *fakeAdminFinder) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return f.users[email], nil
}

func newTestAuthService(t *testing.T) (*AuthService, *auth.JWTService) {
	t.Helper()

	hash, err := auth.HashPassword("correct-horse-9")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	finder := &fakeAdminFinder{
		users: map[string]*models.AdminUser{
			"admin@mhtcet.com": {
				ID:           "admin-1",
				Email:        "admin@mhtcet.com",
				PasswordHash: hash,
				Role:         models.RoleAdmin,
			},
		},
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "cetadvisor.test",
	})

	return NewAuthService(finder, jwtService, zerolog.Nop()), jwtService
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	service, jwtService := newTestAuthService(t)

	resp, err := service.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@mhtcet.com",
		Password: "correct-horse-9",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if resp.User.ID != "admin-1" || resp.User.Role != models.RoleAdmin {
		t.Errorf("Login() user = %+v", resp.User)
	}

	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.UserID != "admin-1" || claims.Role != models.RoleAdmin {
		t.Errorf("token claims = %+v", claims)
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Login(context.Background(), dto.LoginRequest{
		Email:    "  Admin@MHTCET.com ",
		Password: "correct-horse-9",
	})
	if err != nil {
		t.Errorf("Login() with unnormalized email error = %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	service, _ := newTestAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "nobody@mhtcet.com", password: "correct-horse-9"},
		{name: "wrong password", email: "admin@mhtcet.com", password: "wrong"},
	}

	var got []error
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), dto.LoginRequest{Email: tt.email, Password: tt.password})
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("Login() error = %v, want invalid credentials", err)
			}
			got = append(got, err)
		})
	}

	// Both failure modes surface the identical sentinel
	if len(got) == 2 && !errors.Is(got[0], got[1]) {
		t.Errorf("failure modes differ: %v vs %v", got[0], got[1])
	}
}
