package service

import (
	"context"
	"errors"
	"strings"

	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/repository"
)

// TargetService handles user-defined skill targets.
type TargetService struct {
	repo repository.TargetRepository
}

// NewTargetService creates a new TargetService.
func NewTargetService(repo repository.TargetRepository) *TargetService {
	return &TargetService{repo: repo}
}

// GetTargets returns the targets saved by email.
func (s *TargetService) GetTargets(ctx context.Context, email string) (*models.TargetsResponse, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	targets, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if targets == nil {
		targets = []models.Target{}
	}
	return &models.TargetsResponse{Targets: targets}, nil
}

// SaveTarget creates a target, or updates it when input carries an id.
func (s *TargetService) SaveTarget(ctx context.Context, email string, input *models.TargetInput) (*models.StatusResponse, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if input == nil || strings.TrimSpace(input.Role) == "" {
		return nil, apperrors.ErrTargetRequired
	}

	target := &models.Target{
		ID:        strings.TrimSpace(input.ID),
		UserEmail: email,
		Role:      strings.TrimSpace(input.Role),
		Name:      trimmedName(input.Name),
		Variant:   strings.TrimSpace(input.Variant),
		Stats:     input.Stats,
	}
	if target.Stats == nil {
		target.Stats = map[string]float64{}
	}

	if target.ID == "" {
		if err := s.repo.Create(ctx, target); err != nil {
			return nil, err
		}
		return &models.StatusResponse{Status: models.StatusCreated, ID: target.ID}, nil
	}

	existing, err := s.repo.FindByID(ctx, target.ID)
	switch {
	case err == nil:
		if existing.UserEmail != email {
			return nil, apperrors.ErrTargetNotOwned
		}
	case !errors.Is(err, apperrors.ErrTargetNotFound):
		return nil, err
	}

	if err := s.repo.Save(ctx, target); err != nil {
		return nil, err
	}
	return &models.StatusResponse{Status: models.StatusUpdated, ID: target.ID}, nil
}

// DeleteTarget removes a target owned by email.
func (s *TargetService) DeleteTarget(ctx context.Context, email, targetID string) (*models.StatusResponse, error) {
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	targetID = strings.TrimSpace(targetID)
	if targetID == "" {
		return nil, apperrors.ErrTargetIDRequired
	}

	existing, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTargetNotFound) {
			return &models.StatusResponse{Status: models.StatusNotFound, ID: targetID}, nil
		}
		return nil, err
	}
	if existing.UserEmail != email {
		return nil, apperrors.ErrTargetNotOwned
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, apperrors.ErrTargetNotFound) {
			return &models.StatusResponse{Status: models.StatusNotFound, ID: targetID}, nil
		}
		return nil, err
	}
	return &models.StatusResponse{Status: models.StatusDeleted, ID: targetID}, nil
}

// trimmedName keeps an absent name absent; an empty name stays a name.
func trimmedName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	return &trimmed
}
