package model

import (
	"time"
)

// Link status values
const (
	LinkStatusDisabled = 0
	LinkStatusActive   = 1
)

// Link represents a short link. Links are created elsewhere; this service
// only resolves them for redirection and analytics.
type Link struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ShortCode string     `json:"short_code" gorm:"type:varchar(32);uniqueIndex;not null"`
	TargetURL string     `json:"target_url" gorm:"type:varchar(2048);not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt *time.Time `json:"expires_at" gorm:"index"`
	Status    int        `json:"status" gorm:"default:1;comment:1-active,0-disabled"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// IsExpired reports whether the link has an expiry at or before now
func (l *Link) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !now.Before(*l.ExpiresAt)
}

// IsDisabled reports whether the link has been switched off
func (l *Link) IsDisabled() bool {
	return l.Status != LinkStatusActive
}

// IsActive checks if the link is active and not expired
func (l *Link) IsActive(now time.Time) bool {
	return !l.IsDisabled() && !l.IsExpired(now)
}
