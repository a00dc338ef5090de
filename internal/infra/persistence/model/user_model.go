// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"mentorhub/internal/domain/entity"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Email           string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash    string `gorm:"type:varchar(255);not null"`
	Role            string `gorm:"type:varchar(20);not null;index"`
	Name            string `gorm:"type:varchar(100);not null"`
	Bio             string `gorm:"type:varchar(1000)"`
	ProfileImageURL string `gorm:"type:varchar(500)"`
	TechStack       string `gorm:"type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            entity.Role(m.Role),
		Name:            m.Name,
		Bio:             m.Bio,
		ProfileImageURL: m.ProfileImageURL,
		TechStack:       m.TechStack,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity onto a persistence model.
func FromUserDomain(u *entity.User) *UserModel {
	return &UserModel{
		ID:              u.ID,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		Role:            u.Role.String(),
		Name:            u.Name,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		TechStack:       u.TechStack,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
