package model

import (
	"time"

	"mentorhub/internal/domain/entity"
)

// MatchingRequestModel mirrors the 'matching_requests' table.
type MatchingRequestModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	MentorID  int64  `gorm:"not null;index:idx_matching_requests_mentor_status"`
	MenteeID  int64  `gorm:"not null;index"`
	Message   string `gorm:"type:varchar(500)"`
	Status    string `gorm:"type:varchar(20);not null;index:idx_matching_requests_mentor_status"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchingRequestModel) TableName() string {
	return "matching_requests"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *MatchingRequestModel) ToDomain() *entity.MatchingRequest {
	return &entity.MatchingRequest{
		ID:        m.ID,
		MentorID:  m.MentorID,
		MenteeID:  m.MenteeID,
		Message:   m.Message,
		Status:    entity.RequestStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromMatchingRequestDomain maps a domain entity onto a persistence model.
func FromMatchingRequestDomain(r *entity.MatchingRequest) *MatchingRequestModel {
	return &MatchingRequestModel{
		ID:        r.ID,
		MentorID:  r.MentorID,
		MenteeID:  r.MenteeID,
		Message:   r.Message,
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
