package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Skills(t *testing.T) {
	user := &User{TechStack: "Go,Postgres,Kafka"}
	assert.Equal(t, []string{"Go", "Postgres", "Kafka"}, user.Skills())

	empty := &User{}
	assert.Equal(t, []string{}, empty.Skills())
}

func TestUser_PublicProfileOmitsPassword(t *testing.T) {
	user := &User{
		ID:           7,
		Email:        "user@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleMentor,
		Name:         "Grace",
	}

	profile := user.PublicProfile()
	assert.Equal(t, int64(7), profile.ID)
	assert.Equal(t, "mentor", profile.Role)
	// PublicProfile has no password field at all; nothing to redact.
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("mentor")
	assert.True(t, ok)
	assert.Equal(t, RoleMentor, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
}

func TestRequestStatus_Terminal(t *testing.T) {
	assert.False(t, RequestStatusPending.Terminal())
	assert.True(t, RequestStatusAccepted.Terminal())
	assert.True(t, RequestStatusRejected.Terminal())
	assert.True(t, RequestStatusCancelled.Terminal())
}
