package model

// Patches carry the caller-supplied fields of a create or update request.
// Apply follows the non-empty-overwrite convention: a field is only written
// when the caller supplied a non-empty value, so an omitted or empty field
// keeps its stored value. The flip side is that an empty string cannot clear
// a field; that asymmetry is deliberate and kept for wire compatibility.

// PortfolioPatch is the mutable field set of a portfolio item.
type PortfolioPatch struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Link        string `json:"link"`
}

func (p PortfolioPatch) Apply(item *PortfolioItem) {
	if p.Title != "" {
		item.Title = p.Title
	}
	if p.Description != "" {
		item.Description = p.Description
	}
	if p.Category != "" {
		item.Category = p.Category
	}
	if p.Link != "" {
		item.Link = p.Link
	}
}

// ServicePatch is the mutable field set of a service item.
type ServicePatch struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (p ServicePatch) Apply(item *ServiceItem) {
	if p.Name != "" {
		item.Name = p.Name
	}
	if p.Description != "" {
		item.Description = p.Description
	}
	if p.Icon != "" {
		item.Icon = p.Icon
	}
}

// SkillPatch is the mutable field set of a skill item. Level is a pointer so
// an explicit zero survives JSON decoding; nil means "not supplied".
type SkillPatch struct {
	Name  string `json:"name"`
	Level *int   `json:"level"`
}

func (p SkillPatch) Apply(item *SkillItem) {
	if p.Name != "" {
		item.Name = p.Name
	}
	if p.Level != nil {
		item.Level = *p.Level
	}
}

// StoryPatch is the mutable field set of a story item.
type StoryPatch struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (p StoryPatch) Apply(item *StoryItem) {
	if p.Title != "" {
		item.Title = p.Title
	}
	if p.Content != "" {
		item.Content = p.Content
	}
}

// AboutPatch is the mutable field set of the about document.
type AboutPatch struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

func (p AboutPatch) Apply(doc *AboutDocument) {
	if p.Name != "" {
		doc.Name = p.Name
	}
	if p.Title != "" {
		doc.Title = p.Title
	}
	if p.Bio != "" {
		doc.Bio = p.Bio
	}
	if p.Location != "" {
		doc.Location = p.Location
	}
}

// SettingsPatch is the mutable field set of the site-settings document.
type SettingsPatch struct {
	StoriesHeading   string `json:"storiesHeading"`
	PortfolioHeading string `json:"portfolioHeading"`
	ServicesHeading  string `json:"servicesHeading"`
	SkillsHeading    string `json:"skillsHeading"`
	ContactHeading   string `json:"contactHeading"`
}

func (p SettingsPatch) Apply(doc *SettingsDocument) {
	if p.StoriesHeading != "" {
		doc.StoriesHeading = p.StoriesHeading
	}
	if p.PortfolioHeading != "" {
		doc.PortfolioHeading = p.PortfolioHeading
	}
	if p.ServicesHeading != "" {
		doc.ServicesHeading = p.ServicesHeading
	}
	if p.SkillsHeading != "" {
		doc.SkillsHeading = p.SkillsHeading
	}
	if p.ContactHeading != "" {
		doc.ContactHeading = p.ContactHeading
	}
}
