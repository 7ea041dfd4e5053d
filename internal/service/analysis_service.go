package service

import (
	"context"

	"nt-data-lab/internal/advisor"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/repository"

	"github.com/rs/zerolog/log"
)

// AnalysisService runs the skill advisor, merging the caller's saved targets.
type AnalysisService struct {
	analyzer advisor.Analyzer
	targets  repository.TargetRepository
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(analyzer advisor.Analyzer, targets repository.TargetRepository) *AnalysisService {
	return &AnalysisService{
		analyzer: analyzer,
		targets:  targets,
	}
}

// Analyze evaluates the snapshot in req. Saved targets that cannot be loaded
// are logged and the built-in table is used alone.
func (s *AnalysisService) Analyze(ctx context.Context, req *models.AnalysisRequest) (*advisor.Report, error) {
	var overrides []advisor.Override
	if req.Email != "" {
		targets, err := s.targets.FindByEmail(ctx, req.Email)
		if err != nil {
			log.Warn().Err(err).Str("email", req.Email).Msg("failed to load user targets")
		}
		overrides = toOverrides(targets)
	}

	report := s.analyzer.Analyze(req.Request, overrides)
	return &report, nil
}

func toOverrides(targets []models.Target) []advisor.Override {
	if len(targets) == 0 {
		return nil
	}
	out := make([]advisor.Override, 0, len(targets))
	for _, t := range targets {
		out = append(out, advisor.Override{
			Role:    t.Role,
			Name:    t.Name,
			Variant: t.Variant,
			Stats:   t.Stats,
		})
	}
	return out
}
