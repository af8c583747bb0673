package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/akshayp/cetadvisor/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "cetadvisor.app",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	user := &models.AdminUser{ID: "admin-1", Email: "admin@mhtcet.com", Role: models.RoleAdmin}

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "admin-1" {
		t.Errorf("UserID = %q, want admin-1", claims.UserID)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleAdmin)
	}
	if claims.Issuer != "cetadvisor.app" {
		t.Errorf("Issuer = %q, want cetadvisor.app", claims.Issuer)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)
	token, err := svc.GenerateToken(&models.AdminUser{ID: "admin-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestJWTService(time.Hour)
	token, err := issuer.GenerateToken(&models.AdminUser{ID: "admin-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken accepted a token signed with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken accepted garbage input")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc123", "abc123", false},
		{"empty header", "", "", true},
		{"missing prefix", "abc123", "", true},
		{"lowercase prefix", "bearer abc123", "", true},
		{"prefix only", "Bearer ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatal("HashPassword returned the plaintext")
	}
	if !CheckPassword(hash, "S3cret!pass") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
