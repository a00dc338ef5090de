// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mentorhub/internal/domain/entity"
)

// Directory sort keys. Any other value preserves input order.
const (
	SortByName      = "name"
	SortByTechStack = "techStack"
)

// SearchMentorsInput defines the optional filter and sort of a directory search.
type SearchMentorsInput struct {
	// TechStack keeps only mentors whose raw tech-stack string contains this
	// value as a case-sensitive substring. Empty means no filtering.
	TechStack string

	// SortBy is one of the sort-key constants above. Unrecognized or empty
	// values leave the store order untouched.
	SortBy string
}

// DirectoryUsecase is the read-only search view over mentor profiles.
// It performs no mutation and only propagates store errors.
type DirectoryUsecase interface {
	SearchMentors(ctx context.Context, input *SearchMentorsInput) ([]*entity.MentorSummary, error)
}
