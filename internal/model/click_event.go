package model

import (
	"time"
	"unicode/utf8"
)

// Widths of the free-text click columns, in characters
const (
	ClientAddressWidth = 64
	UserAgentWidth     = 512
	ReferrerWidth      = 2048
)

// ClickEvent is one persisted redirect of a short link, enriched with the
// location resolved for the client address.
type ClickEvent struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	LinkID        int64     `json:"link_id" gorm:"index:idx_click_link_time,priority:1;not null"`
	ClickedAt     time.Time `json:"clicked_at" gorm:"index:idx_click_link_time,priority:2;index;not null"`
	ClientAddress *string   `json:"client_address" gorm:"type:varchar(64)"`
	UserAgent     *string   `json:"user_agent" gorm:"type:varchar(512)"`
	Referrer      *string   `json:"referrer" gorm:"type:varchar(2048)"`
	CountryCode   *string   `json:"country_code" gorm:"type:varchar(2)"`
	CountryName   *string   `json:"country_name" gorm:"type:varchar(128)"`
	Region        *string   `json:"region" gorm:"type:varchar(128)"`
	City          *string   `json:"city" gorm:"type:varchar(128)"`
	Timezone      *string   `json:"timezone" gorm:"type:varchar(64)"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Organization  *string   `json:"organization" gorm:"type:varchar(255)"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "click_events"
}

// ClickInput is what the redirect path knows about a click before it is
// recorded. Empty strings mean the value was absent.
type ClickInput struct {
	LinkID        int64     `json:"link_id"`
	ShortCode     string    `json:"short_code"`
	ClientAddress string    `json:"client_address"`
	UserAgent     string    `json:"user_agent"`
	Referrer      string    `json:"referrer"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewClickEvent builds the row to persist from the click input and its
// resolved location. A nil location leaves every geo column empty. Header
// values longer than their column are cut to fit.
func NewClickEvent(id string, in ClickInput, loc *GeoLookupResult) *ClickEvent {
	event := &ClickEvent{
		ID:            id,
		LinkID:        in.LinkID,
		ClickedAt:     in.Timestamp.UTC(),
		ClientAddress: optional(clamp(in.ClientAddress, ClientAddressWidth)),
		UserAgent:     optional(clamp(in.UserAgent, UserAgentWidth)),
		Referrer:      optional(clamp(in.Referrer, ReferrerWidth)),
	}
	if loc != nil {
		event.CountryCode = loc.CountryCode
		event.CountryName = loc.CountryName
		event.Region = loc.Region
		event.City = loc.City
		event.Timezone = loc.Timezone
		event.Latitude = loc.Latitude
		event.Longitude = loc.Longitude
		event.Organization = loc.Organization
	}
	return event
}

// ClickMessage is the payload published to RocketMQ for each redirect
type ClickMessage struct {
	LinkID        int64     `json:"link_id"`
	ShortCode     string    `json:"short_code"`
	ClientAddress string    `json:"client_address"`
	UserAgent     string    `json:"user_agent"`
	Referrer      string    `json:"referrer"`
	ClickedAt     time.Time `json:"clicked_at"`
}

// NewClickMessage builds the queue payload for a click
func NewClickMessage(in ClickInput) *ClickMessage {
	return &ClickMessage{
		LinkID:        in.LinkID,
		ShortCode:     in.ShortCode,
		ClientAddress: in.ClientAddress,
		UserAgent:     in.UserAgent,
		Referrer:      in.Referrer,
		ClickedAt:     in.Timestamp,
	}
}

// Input converts the message back into a recorder input
func (m *ClickMessage) Input() ClickInput {
	return ClickInput{
		LinkID:        m.LinkID,
		ShortCode:     m.ShortCode,
		ClientAddress: m.ClientAddress,
		UserAgent:     m.UserAgent,
		Referrer:      m.Referrer,
		Timestamp:     m.ClickedAt,
	}
}

// clamp cuts s to at most width characters without splitting a rune
func clamp(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	n := 0
	for i := range s {
		if n == width {
			return s[:i]
		}
		n++
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, returning "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
