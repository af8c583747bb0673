package services

import (
	"context"
	"errors"
	"testing"

	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/repositories"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestCreateUpdateValidation(t *testing.T) {
	service := NewUpdateService(repositories.NewUpdateRepository(nil))

	tests := []struct {
		name string
		req  dto.CreateUpdateRequest
	}{
		{name: "missing title", req: dto.CreateUpdateRequest{Content: "body"}},
		{name: "blank title", req: dto.CreateUpdateRequest{Title: "   ", Content: "body"}},
		{name: "missing content", req: dto.CreateUpdateRequest{Title: "CAP Round 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.CreateUpdate(context.Background(), tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateUpdate() error = %v, want validation failure", err)
			}
		})
	}
}

func TestEditUpdateValidation(t *testing.T) {
	service := NewUpdateService(repositories.NewUpdateRepository(nil))

	tests := []struct {
		name string
		req  dto.PatchUpdateRequest
	}{
		{name: "no fields provided", req: dto.PatchUpdateRequest{}},
		{name: "blank title", req: dto.PatchUpdateRequest{Title: strPtr("  ")}},
		{name: "blank content", req: dto.PatchUpdateRequest{Content: strPtr("")}},
		{name: "garbage published date", req: dto.PatchUpdateRequest{PublishedDate: strPtr("next friday")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.EditUpdate(context.Background(), "some-id", tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("EditUpdate() error = %v, want validation failure", err)
			}
		})
	}
}

func TestParseFlexibleTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "full RFC3339 timestamp", value: "2026-02-14T10:30:00Z", wantErr: false},
		{name: "bare date", value: "2026-02-14", wantErr: false},
		{name: "garbage", value: "14/02/2026", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlexibleTime(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseFlexibleTime(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
