package services

import (
	"context"
	"strings"
	"time"

	"github.com/akshayp/cetadvisor/internal/app/models"
	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/repositories"
	"github.com/akshayp/cetadvisor/internal/pkg/apperrors"
)

// UpdateService handles announcement updates
type UpdateService struct {
	updateRepo *repositories.UpdateRepository
}

// NewUpdateService creates a new UpdateService
func NewUpdateService(updateRepo *repositories.UpdateRepository) *UpdateService {
	return &UpdateService{updateRepo: updateRepo}
}

// GetUpdates returns all updates, newest first
func (s *UpdateService) GetUpdates(ctx context.Context) ([]models.Update, error) {
	return s.updateRepo.GetAll(ctx)
}

// CreateUpdate creates a new update
func (s *UpdateService) CreateUpdate(ctx context.Context, req dto.CreateUpdateRequest) (*models.Update, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("Title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("Content is required")
	}

	update := &models.Update{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.updateRepo.Create(ctx, update); err != nil {
		return nil, err
	}

	return update, nil
}

// EditUpdate applies a partial edit to an update. At least one field must
// be present; edited_at is stamped on every successful edit.
func (s *UpdateService) EditUpdate(ctx context.Context, id string, req dto.PatchUpdateRequest) (*models.Update, error) {
	if req.Title == nil && req.Content == nil && req.PublishedDate == nil {
		return nil, apperrors.NewValidationError("At least one field must be provided")
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, apperrors.NewValidationError("Title cannot be empty")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return nil, apperrors.NewValidationError("Content cannot be empty")
	}

	var publishedDate *time.Time
	if req.PublishedDate != nil {
		parsed, err := parseFlexibleTime(*req.PublishedDate)
		if err != nil {
			return nil, apperrors.NewValidationError("published_date must be an ISO 8601 date")
		}
		publishedDate = &parsed
	}

	return s.updateRepo.Update(ctx, id, req.Title, req.Content, publishedDate)
}

// DeleteUpdate deletes an update
func (s *UpdateService) DeleteUpdate(ctx context.Context, id string) error {
	return s.updateRepo.Delete(ctx, id)
}

// parseFlexibleTime accepts a full RFC 3339 timestamp or a bare date.
func parseFlexibleTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
