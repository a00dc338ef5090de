// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is the core account record. The store assigns the numeric ID on
// creation; email and role are immutable afterwards. PasswordHash must never
// travel beyond the usecase layer, which is why every outward-facing
// operation returns a PublicProfile projection instead of the User itself.
type User struct {
	ID              int64     // Store-assigned identifier, never reused.
	Email           string    // Unique login identifier, matched case-sensitively.
	PasswordHash    string    // bcrypt digest of the user's password.
	Role            Role      // mentor or mentee, fixed at registration.
	Name            string    // Display name.
	Bio             string    // Optional self-introduction, at most 1000 characters.
	ProfileImageURL string    // Optional reference to a profile image.
	TechStack       string    // Comma-separated skill tags. Only meaningful for mentors.
	CreatedAt       time.Time // Timestamp of when this account was created.
	UpdatedAt       time.Time // Timestamp of the last modification to this account.
}

// PublicProfile is the outward-facing view of a User. It deliberately has no
// password field, so redaction cannot be forgotten at a call site.
type PublicProfile struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profileImageUrl"`
	TechStack       string `json:"techStack,omitempty"`
}

// PublicProfile projects the user into its outward-facing representation.
func (u *User) PublicProfile() *PublicProfile {
	return &PublicProfile{
		ID:              u.ID,
		Email:           u.Email,
		Role:            u.Role.String(),
		Name:            u.Name,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		TechStack:       u.TechStack,
	}
}

// Skills splits the raw tech-stack string on commas.
// An empty tech stack yields an empty slice, not a single empty token.
func (u *User) Skills() []string {
	if u.TechStack == "" {
		return []string{}
	}

	return strings.Split(u.TechStack, ",")
}

// MentorSummary is the directory projection of a mentor profile.
type MentorSummary struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio"`
	ProfileImageURL string   `json:"profileImageUrl"`
	Skills          []string `json:"skills"`
}
