// Package profile persists user personalization profiles as Redis hashes.
package profile

import (
	"context"
	"fmt"

	"github.com/nkuhub/infosearch/internal/domain"
	domprofile "github.com/nkuhub/infosearch/internal/domain/profile"
)

const keyPrefix = "infosearch:profile:"

// store is the consumer interface for profile persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo implements profile lookup and storage.
type Repo struct {
	store store
}

// New creates a profile repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

func key(username string) string {
	return keyPrefix + username
}

// Get loads a profile by username. A missing profile yields
// domain.ErrProfileNotFound, which upstream degrades to a non-personalized
// search.
func (r *Repo) Get(ctx context.Context, username string) (domprofile.Profile, error) {
	fields, err := r.store.HGetAll(ctx, key(username))
	if err != nil {
		return domprofile.Profile{}, fmt.Errorf("get profile %s: %w", username, err)
	}
	if len(fields) == 0 {
		return domprofile.Profile{}, fmt.Errorf("profile %s: %w", username, domain.ErrProfileNotFound)
	}
	return fromFields(username, fields), nil
}

// Save stores a profile, overwriting existing fields.
func (r *Repo) Save(ctx context.Context, p *domprofile.Profile) error {
	if p.Username == "" {
		return fmt.Errorf("save profile: username is required")
	}
	if err := r.store.HSet(ctx, key(p.Username), toFields(p)); err != nil {
		return fmt.Errorf("save profile %s: %w", p.Username, err)
	}
	return nil
}

func fromFields(username string, fields map[string]string) domprofile.Profile {
	college := fields["college"]
	if college == "" {
		college = domprofile.Unset
	}
	return domprofile.Profile{
		Username: username,
		Role:     domprofile.ParseRole(fields["role"]),
		College:  college,
		Major:    fields["major"],
		Grade:    fields["grade"],
		Research: fields["research"],
	}
}

func toFields(p *domprofile.Profile) map[string]string {
	return map[string]string{
		"role":     string(p.Role),
		"college":  p.College,
		"major":    p.Major,
		"grade":    p.Grade,
		"research": p.Research,
	}
}
