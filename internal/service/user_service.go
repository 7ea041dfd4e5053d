package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"nt-data-lab/internal/authz"
	"nt-data-lab/internal/cache"
	apperrors "nt-data-lab/internal/errors"
	"nt-data-lab/internal/models"
	"nt-data-lab/internal/repository"

	"github.com/rs/zerolog/log"
)

// DefaultProfileCacheTTL is used when no TTL is configured.
const DefaultProfileCacheTTL = 5 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	repo     repository.UserRepository
	resolver authz.Resolver
	cache    cache.Cache
	ttl      time.Duration
}

// NewUserService creates a new UserService. The cache may be nil.
func NewUserService(repo repository.UserRepository, resolver authz.Resolver, c cache.Cache, ttl time.Duration) *UserService {
	if ttl <= 0 {
		ttl = DefaultProfileCacheTTL
	}
	return &UserService{
		repo:     repo,
		resolver: resolver,
		cache:    c,
		ttl:      ttl,
	}
}

// GetProfile returns the user record and access context of email (with caching).
// Unknown users get a synthesized record with no role.
func (s *UserService) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}

	// Try cache first
	cacheKey := cache.ProfileCacheKey(email)
	if s.cache != nil {
		var profile models.Profile
		found, err := s.cache.Get(ctx, cacheKey, &profile)
		if err == nil && found {
			return &profile, nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, err
		}
		user = &models.User{Email: email}
	}

	access, err := s.resolver.ResolveContext(ctx, email)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{User: *user, Context: *access}

	// Store in cache (ignore errors - cache is best effort)
	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, profile, s.ttl)
	}

	return profile, nil
}

// invalidateProfiles drops cached profiles. Failures are logged only.
func invalidateProfiles(ctx context.Context, c cache.Cache, emails ...string) {
	if c == nil || len(emails) == 0 {
		return
	}
	keys := make([]string, 0, len(emails))
	for _, email := range emails {
		if email != "" {
			keys = append(keys, cache.ProfileCacheKey(email))
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("failed to invalidate profile cache")
	}
}
