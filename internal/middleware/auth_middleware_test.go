package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/pkg/auth"
)

func newGuardedRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	guard := NewAuthMiddleware(jwtService)
	router.GET("/protected", guard.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(ContextUserID)})
	})
	return router
}

func getProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	return resp
}

func TestJWTAuthRejectsTokens(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "cetadvisor.app",
	})
	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "cetadvisor.app",
	})
	expiredToken, err := expiredService.GenerateToken(&models.AdminUser{ID: "admin-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := newGuardedRouter(jwtService)

	tests := []struct {
		name        string
		header      string
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{name: "no header", header: "", wantCode: dto.ErrorCodeMissingToken, wantMessage: "Authorization token is required"},
		{name: "not bearer", header: "Basic abc123", wantCode: dto.ErrorCodeMissingToken, wantMessage: "Authorization token is required"},
		{name: "garbage token", header: "Bearer not.a.token", wantCode: dto.ErrorCodeInvalidToken, wantMessage: "Invalid token"},
		{name: "expired token", header: "Bearer " + expiredToken, wantCode: dto.ErrorCodeInvalidToken, wantMessage: "Token has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getProtected(router, tt.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			resp := decodeEnvelope(t, w)
			if resp.Error == nil {
				t.Fatal("envelope has no error detail")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.Message != tt.wantMessage {
				t.Errorf("error message = %q, want %q", resp.Error.Message, tt.wantMessage)
			}
		})
	}
}

func TestJWTAuthPassesClaimsThrough(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "cetadvisor.app",
	})
	token, err := jwtService.GenerateToken(&models.AdminUser{ID: "admin-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := newGuardedRouter(jwtService)
	w := getProtected(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["userID"] != "admin-1" {
		t.Errorf("userID in context = %q, want admin-1", body["userID"])
	}
}
