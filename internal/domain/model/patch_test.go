package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestPortfolioPatch_ApplyOverwritesOnlySuppliedFields(t *testing.T) {
	item := NewPortfolioItem(PortfolioPatch{Title: "A", Category: "web"}, "", testNow)
	require.Equal(t, "A", item.Title)
	require.Equal(t, "web", item.Category)

	PortfolioPatch{Title: "B"}.Apply(&item)

	assert.Equal(t, "B", item.Title)
	assert.Equal(t, "web", item.Category, "empty category must not clear the stored value")
	assert.Empty(t, item.Description)
}

func TestPortfolioPatch_EmptyStringCannotClearField(t *testing.T) {
	item := NewPortfolioItem(PortfolioPatch{Title: "A", Link: "https://example.com"}, "", testNow)

	PortfolioPatch{Link: ""}.Apply(&item)

	assert.Equal(t, "https://example.com", item.Link)
}

func TestNewPortfolioItem_Defaults(t *testing.T) {
	item := NewPortfolioItem(PortfolioPatch{Title: "A"}, "/uploads/a.webp", testNow)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, DefaultCategory, item.Category)
	assert.Equal(t, "/uploads/a.webp", item.Image)
	assert.Equal(t, testNow, item.CreatedAt)
	assert.True(t, item.UpdatedAt.IsZero())
}

func TestNewServiceItem_DefaultIcon(t *testing.T) {
	item := NewServiceItem(ServicePatch{Name: "Web Design"}, testNow)
	assert.Equal(t, DefaultIcon, item.Icon)

	custom := NewServiceItem(ServicePatch{Name: "UX", Icon: "images/svg/ux.svg"}, testNow)
	assert.Equal(t, "images/svg/ux.svg", custom.Icon)
}

func TestNewSkillItem_LevelDefaultsWhenAbsent(t *testing.T) {
	item := NewSkillItem(SkillPatch{Name: "Figma"}, testNow)
	assert.Equal(t, DefaultSkillLevel, item.Level)
}

func TestSkillPatch_ExplicitZeroLevelIsApplied(t *testing.T) {
	item := NewSkillItem(SkillPatch{Name: "Figma"}, testNow)

	zero := 0
	SkillPatch{Level: &zero}.Apply(&item)

	assert.Equal(t, 0, item.Level)
}

func TestSkillPatch_NilLevelKeepsStoredValue(t *testing.T) {
	level := 88
	item := NewSkillItem(SkillPatch{Name: "Figma", Level: &level}, testNow)

	SkillPatch{Name: "Figma Design"}.Apply(&item)

	assert.Equal(t, "Figma Design", item.Name)
	assert.Equal(t, 88, item.Level)
}

func TestSkillItem_OutOfRangeLevelIsAcceptedUnvalidated(t *testing.T) {
	level := 250
	item := NewSkillItem(SkillPatch{Name: "Hype", Level: &level}, testNow)
	assert.Equal(t, 250, item.Level)
}

func TestSettingsPatch_Apply(t *testing.T) {
	doc := SettingsDocument{
		StoriesHeading:   "From the land of peaks",
		ContactHeading:   "Get In Touch",
		PortfolioHeading: "Selected Works",
	}

	SettingsPatch{ContactHeading: "Say Hello"}.Apply(&doc)

	assert.Equal(t, "Say Hello", doc.ContactHeading)
	assert.Equal(t, "From the land of peaks", doc.StoriesHeading)
	assert.Equal(t, "Selected Works", doc.PortfolioHeading)
}

func TestAboutPatch_Apply(t *testing.T) {
	doc := AboutDocument{Name: "Tashfeen", Location: "Gilgit"}

	AboutPatch{Bio: "Designer and developer."}.Apply(&doc)

	assert.Equal(t, "Tashfeen", doc.Name)
	assert.Equal(t, "Gilgit", doc.Location)
	assert.Equal(t, "Designer and developer.", doc.Bio)
}

func TestNewMessage_StartsUnread(t *testing.T) {
	msg := NewMessage("Ada", "ada@example.com", "Hello there", testNow)

	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Read)
	assert.Equal(t, testNow, msg.CreatedAt)
}
