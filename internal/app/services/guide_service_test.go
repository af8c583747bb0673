package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
)

type fakeGuideStore struct {
	guides    map[string]models.Guide
	downloads []models.GuideDownload
}

func (f *fakeGuideStore) GetActive(ctx context.Context) ([]models.Guide, error) {
	active := []models.Guide{}
	for _, g := range f.guides {
		if g.IsActive {
			active = append(active, g)
		}
	}
	return active, nil
}

func (f *fakeGuideStore) GetByID(ctx context.Context, id string) (*models.Guide, error) {
	g, ok := f.guides[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (f *fakeGuideStore) Create(ctx context.Context, guide *models.Guide) error {
	guide.ID = "guide-new"
	guide.IsActive = true
	f.guides[guide.ID] = *guide
	return nil
}

func (f *fakeGuideStore) RecordDownload(ctx context.Context, download *models.GuideDownload) error {
	download.ID = "download-1"
	f.downloads = append(f.downloads, *download)
	return nil
}

func newTestGuideService() (*GuideService, *fakeGuideStore) {
	store := &fakeGuideStore{
		guides: map[string]models.Guide{
			"guide-active":   {ID: "guide-active", Title: "CAP Round Strategy", FileURL: "https://cdn.example.com/cap.pdf", IsActive: true},
			"guide-inactive": {ID: "guide-inactive", Title: "Old Guide", FileURL: "https://cdn.example.com/old.pdf", IsActive: false},
		},
	}
	return NewGuideService(store, zerolog.Nop()), store
}

func TestDownloadGuide(t *testing.T) {
	percentile := 94.2
	badPercentile := 120.0

	tests := []struct {
		name    string
		req     dto.GuideDownloadRequest
		wantErr error
	}{
		{
			name: "active guide hands out file url",
			req:  dto.GuideDownloadRequest{GuideID: "guide-active", Name: "Aarav", Email: "aarav@example.com", Percentile: &percentile},
		},
		{
			name: "percentile is optional",
			req:  dto.GuideDownloadRequest{GuideID: "guide-active", Name: "Aarav", Email: "aarav@example.com"},
		},
		{
			name:    "unknown guide",
			req:     dto.GuideDownloadRequest{GuideID: "guide-missing", Name: "Aarav", Email: "aarav@example.com"},
			wantErr: apperrors.ErrGuideNotFound,
		},
		{
			name:    "inactive guide",
			req:     dto.GuideDownloadRequest{GuideID: "guide-inactive", Name: "Aarav", Email: "aarav@example.com"},
			wantErr: apperrors.ErrGuideUnavailable,
		},
		{
			name:    "malformed email",
			req:     dto.GuideDownloadRequest{GuideID: "guide-active", Name: "Aarav", Email: "nope"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "missing name",
			req:     dto.GuideDownloadRequest{GuideID: "guide-active", Name: " ", Email: "aarav@example.com"},
			wantErr: apperrors.ErrValidationFailed,
		},
		{
			name:    "percentile out of range",
			req:     dto.GuideDownloadRequest{GuideID: "guide-active", Name: "Aarav", Email: "aarav@example.com", Percentile: &badPercentile},
			wantErr: apperrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newTestGuideService()
			data, err := service.DownloadGuide(context.Background(), tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DownloadGuide() error = %v, want %v", err, tt.wantErr)
				}
				if len(store.downloads) != 0 {
					t.Errorf("download was recorded despite error")
				}
				return
			}

			if err != nil {
				t.Fatalf("DownloadGuide() error = %v", err)
			}
			if data.FileURL != "https://cdn.example.com/cap.pdf" {
				t.Errorf("FileURL = %q", data.FileURL)
			}
			if len(store.downloads) != 1 {
				t.Fatalf("recorded %d downloads, want 1", len(store.downloads))
			}
			if store.downloads[0].GuideID != "guide-active" || store.downloads[0].Email != tt.req.Email {
				t.Errorf("recorded download = %+v", store.downloads[0])
			}
		})
	}
}

func TestGetGuidesReturnsOnlyActive(t *testing.T) {
	service, _ := newTestGuideService()
	guides, err := service.GetGuides(context.Background())
	if err != nil {
		t.Fatalf("GetGuides() error = %v", err)
	}
	if len(guides) != 1 || guides[0].ID != "guide-active" {
		t.Errorf("GetGuides() = %+v, want only the active guide", guides)
	}
}

func TestCreateGuideValidation(t *testing.T) {
	service, _ := newTestGuideService()

	tests := []struct {
		name string
		req  dto.CreateGuideRequest
	}{
		{name: "missing title", req: dto.CreateGuideRequest{Description: "d", FileURL: "u"}},
		{name: "missing description", req: dto.CreateGuideRequest{Title: "t", FileURL: "u"}},
		{name: "missing file url", req: dto.CreateGuideRequest{Title: "t", Description: "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.CreateGuide(context.Background(), tt.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateGuide() error = %v, want validation failure", err)
			}
		})
	}
}
