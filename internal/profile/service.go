package profile

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/osse101/SceneIt_Go/internal/domain"
	"github.com/osse101/SceneIt_Go/internal/logger"
	"github.com/osse101/SceneIt_Go/internal/repository"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// Service defines the profile service interface
type Service interface {
	// EnsureProfile creates the caller's profile on first use
	EnsureProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error)
	GetProfile(ctx context.Context, profileID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, update domain.ProfileUpdate) (*domain.Profile, error)

	// InvalidateProfile drops a cached profile after its counters changed
	InvalidateProfile(profileID string)
}

// Config controls the profile cache
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo     repository.Profile
	cache    *profileCache
	reserved map[string]struct{}
}

// NewService creates a new profile service
func NewService(repo repository.Profile, cfg Config) Service {
	reserved := make(map[string]struct{}, len(reservedUsernames))
	for _, name := range reservedUsernames {
		reserved[foldName(name)] = struct{}{}
	}
	return &service{
		repo:     repo,
		cache:    newProfileCache(cfg.CacheSize, cfg.CacheTTL),
		reserved: reserved,
	}
}

func (s *service) EnsureProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	if identity.Subject == "" {
		return nil, domain.ErrUnauthorized
	}

	// A claimed username is only a suggestion; drop it when it would fail validation
	if identity.Username != "" && s.validateUsername(identity.Username) != nil {
		identity.Username = ""
	}

	p, err := s.repo.EnsureProfile(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}
	s.cache.Set(p)
	return p, nil
}

func (s *service) GetProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	if p, ok := s.cache.Get(profileID); ok {
		return p, nil
	}

	p, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(p)
	return p, nil
}

func (s *service) UpdateProfile(ctx context.Context, profileID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	if update.IsEmpty() {
		return nil, domain.ErrInvalidInput
	}

	if update.Username != nil {
		name := strings.TrimSpace(*update.Username)
		if err := s.validateUsername(name); err != nil {
			return nil, err
		}
		update.Username = &name
	}
	if update.About != nil && utf8.RuneCountInString(*update.About) > domain.MaxAboutLength {
		return nil, domain.ErrInvalidInput
	}
	if update.ProfileImageURL != nil && *update.ProfileImageURL != "" {
		if err := validateImageURL(*update.ProfileImageURL); err != nil {
			return nil, err
		}
	}

	s.cache.Invalidate(profileID)
	p, err := s.repo.UpdateProfile(ctx, profileID, update)
	if err != nil {
		return nil, err
	}
	s.cache.Set(p)

	logger.FromContext(ctx).Info("Profile updated", "profile_id", profileID)
	return p, nil
}

func (s *service) InvalidateProfile(profileID string) {
	s.cache.Invalidate(profileID)
}

func (s *service) validateUsername(name string) error {
	n := utf8.RuneCountInString(name)
	if n < domain.MinUsernameLength || n > domain.MaxUsernameLength || !usernamePattern.MatchString(name) {
		return domain.ErrInvalidUsername
	}
	if _, reserved := s.reserved[foldName(name)]; reserved {
		return domain.ErrInvalidUsername
	}
	return nil
}

// foldName case-folds a username. Casers are stateful, so each call gets its own.
func foldName(name string) string {
	return cases.Fold().String(name)
}

func validateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return domain.ErrInvalidProfileURL
	}
	return nil
}
