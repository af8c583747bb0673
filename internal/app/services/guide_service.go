package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
	"github.com/akshayp/cetadvisor/internal/pkg/validation"
)

// guideStore is the persistence surface the guide service needs. It is
// satisfied by repositories.GuideRepository.
type guideStore interface {
	GetActive(ctx context.Context) ([]models.Guide, error)
	GetByID(ctx context.Context, id string) (*models.Guide, error)
	Create(ctx context.Context, guide *models.Guide) error
	RecordDownload(ctx context.Context, download *models.GuideDownload) error
}

// GuideService handles guide listing, creation and download lead capture
type GuideService struct {
	guideRepo guideStore
	logger    zerolog.Logger
}

// NewGuideService creates a new GuideService
func NewGuideService(guideRepo guideStore, logger zerolog.Logger) *GuideService {
	return &GuideService{
		guideRepo: guideRepo,
		logger:    logger,
	}
}

// GetGuides returns active guides, newest first
func (s *GuideService) GetGuides(ctx context.Context) ([]models.Guide, error) {
	return s.guideRepo.GetActive(ctx)
}

// CreateGuide creates a new guide
func (s *GuideService) CreateGuide(ctx context.Context, req dto.CreateGuideRequest) (*models.Guide, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("Title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationError("Description is required")
	}
	if strings.TrimSpace(req.FileURL) == "" {
		return nil, apperrors.NewValidationError("File URL is required")
	}

	guide := &models.Guide{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
	}
	if err := s.guideRepo.Create(ctx, guide); err != nil {
		return nil, err
	}

	return guide, nil
}

// DownloadGuide records the lead and hands out the guide file URL. The
// download log row is written before the URL is returned; an inactive
// guide is never handed out even when its id is known.
func (s *GuideService) DownloadGuide(ctx context.Context, req dto.GuideDownloadRequest) (*dto.GuideDownloadData, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Name is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("A valid email is required")
	}
	if req.Percentile != nil && !validation.IsValidPercentile(*req.Percentile) {
		return nil, apperrors.NewValidationError("Percentile must be between 0 and 100")
	}

	guide, err := s.guideRepo.GetByID(ctx, req.GuideID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, apperrors.ErrGuideNotFound
	}
	if !guide.IsActive {
		return nil, apperrors.ErrGuideUnavailable
	}

	download := &models.GuideDownload{
		GuideID:    guide.ID,
		Name:       req.Name,
		Email:      req.Email,
		Percentile: req.Percentile,
	}
	if err := s.guideRepo.RecordDownload(ctx, download); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("guideId", guide.ID).
		Str("email", req.Email).
		Msg("Guide download recorded")

	return &dto.GuideDownloadData{FileURL: guide.FileURL}, nil
}
