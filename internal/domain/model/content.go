// Package model holds the persisted content records, their partial-update
// patches, and the domain error taxonomy.
package model

import "time"

// PortfolioItem is a single entry in the portfolio collection.
type PortfolioItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// RecordID implements driven.Record.
func (p PortfolioItem) RecordID() string { return p.ID }

// ServiceItem is a single entry in the services collection.
type ServiceItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

func (s ServiceItem) RecordID() string { return s.ID }

// SkillItem is a single entry in the skills collection. Level is a 0-100
// percentage by UI convention; the store accepts out-of-range values.
type SkillItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (s SkillItem) RecordID() string { return s.ID }

// StoryItem is a single entry in the stories collection. Content is stored as
// written; the HTTP layer renders it to sanitized HTML for responses.
type StoryItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (s StoryItem) RecordID() string { return s.ID }

// Message is a contact-form submission. Messages are append-only: after
// creation only the Read flag changes, and restore-defaults never touches the
// messages collection.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Message) RecordID() string { return m.ID }

// AboutDocument is the singleton about-me document.
type AboutDocument struct {
	Name      string    `json:"name,omitempty"`
	Title     string    `json:"title,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	Image     string    `json:"image,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// SettingsDocument is the singleton site-settings document holding the public
// section headings.
type SettingsDocument struct {
	StoriesHeading   string    `json:"storiesHeading,omitempty"`
	PortfolioHeading string    `json:"portfolioHeading,omitempty"`
	ServicesHeading  string    `json:"servicesHeading,omitempty"`
	SkillsHeading    string    `json:"skillsHeading,omitempty"`
	ContactHeading   string    `json:"contactHeading,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

// defaults applied on create when the caller leaves the field empty.
const (
	DefaultCategory   = "web"
	DefaultIcon       = "icon-star"
	DefaultSkillLevel = 50
)

// NewPortfolioItem builds a portfolio record from a create request.
func NewPortfolioItem(p PortfolioPatch, image string, now time.Time) PortfolioItem {
	item := PortfolioItem{
		ID:        NewID(),
		Category:  DefaultCategory,
		Image:     image,
		CreatedAt: now,
	}
	p.Apply(&item)
	return item
}

// NewServiceItem builds a service record from a create request.
func NewServiceItem(p ServicePatch, now time.Time) ServiceItem {
	item := ServiceItem{
		ID:        NewID(),
		Icon:      DefaultIcon,
		CreatedAt: now,
	}
	p.Apply(&item)
	return item
}

// NewSkillItem builds a skill record from a create request. A missing level
// falls back to DefaultSkillLevel; supplied values are stored unvalidated.
func NewSkillItem(p SkillPatch, now time.Time) SkillItem {
	item := SkillItem{
		ID:        NewID(),
		Level:     DefaultSkillLevel,
		CreatedAt: now,
	}
	p.Apply(&item)
	return item
}

// NewStoryItem builds a story record from a create request.
func NewStoryItem(p StoryPatch, image string, now time.Time) StoryItem {
	item := StoryItem{
		ID:        NewID(),
		Image:     image,
		CreatedAt: now,
	}
	p.Apply(&item)
	return item
}

// NewMessage builds an unread contact message.
func NewMessage(name, email, body string, now time.Time) Message {
	return Message{
		ID:        NewID(),
		Name:      name,
		Email:     email,
		Message:   body,
		Read:      false,
		CreatedAt: now,
	}
}
