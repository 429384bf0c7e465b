// Package seed bundles the default site content used to initialize a fresh
// deployment and to serve the admin panel's restore-defaults action. Each
// function returns a fresh copy so callers can never mutate the bundled data.
package seed

import (
	"time"

	"github.com/tashu/studio/internal/domain/model"
)

var seededAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// About returns the default about-me document.
func About() model.AboutDocument {
	return model.AboutDocument{
		Name:     "Tashfeen Riaz",
		Title:    "Web Designer & Developer",
		Location: "Gilgit, Pakistan",
		Bio: "I'm Tashfeen Riaz, a passionate web designer and developer based in Gilgit, Pakistan. " +
			"I design and build clean, modern, and responsive web experiences that balance creativity " +
			"with functionality. Every project I work on is an opportunity to turn ideas into intuitive " +
			"interfaces, seamless interactions, and meaningful digital journeys.",
		Image:     "images/about_me_pic2.webp",
		UpdatedAt: seededAt,
	}
}

// Settings returns the default public section headings.
func Settings() model.SettingsDocument {
	return model.SettingsDocument{
		StoriesHeading:   "From the land of peaks",
		PortfolioHeading: "Selected Works",
		ServicesHeading:  "What I Do",
		SkillsHeading:    "My Skills",
		ContactHeading:   "Get In Touch",
		UpdatedAt:        seededAt,
	}
}

// Services returns the default services collection.
func Services() []model.ServiceItem {
	return []model.ServiceItem{
		{ID: "svc001", Name: "Digital Strategy", Description: "Crafting smart digital strategies that turn ideas into impactful, user-focused experiences", Icon: "images/svg/001-options.svg", CreatedAt: seededAt},
		{ID: "svc002", Name: "Web Design", Description: "Designing clean, modern websites that combine creativity, usability, and seamless user experiences", Icon: "images/svg/002-chat.svg", CreatedAt: seededAt},
		{ID: "svc003", Name: "User Experience", Description: "Crafting intuitive, engaging experiences that connect users with meaningful and seamless digital journeys", Icon: "images/svg/003-contact-book.svg", CreatedAt: seededAt},
		{ID: "svc004", Name: "Web Development", Description: "Building fast, responsive websites that combine clean code, functionality, and seamless design", Icon: "images/svg/004-percentage.svg", CreatedAt: seededAt},
		{ID: "svc005", Name: "WordPress Solutions", Description: "Creating custom WordPress solutions that are flexible, user-friendly, and tailored to goals", Icon: "images/svg/006-goal.svg", CreatedAt: seededAt},
		{ID: "svc006", Name: "Mobile Applications", Description: "Designing and developing mobile applications that are intuitive, fast, and user-friendly", Icon: "images/svg/005-line-chart.svg", CreatedAt: seededAt},
	}
}

// Skills returns the default skills collection.
func Skills() []model.SkillItem {
	return []model.SkillItem{
		{ID: "skill001", Name: "WordPress", Level: 90, CreatedAt: seededAt},
		{ID: "skill002", Name: "HTML/CSS", Level: 99, CreatedAt: seededAt},
		{ID: "skill003", Name: "Shopify/Liquid", Level: 95, CreatedAt: seededAt},
		{ID: "skill004", Name: "UI/UX Design", Level: 100, CreatedAt: seededAt},
		{ID: "skill005", Name: "JavaScript", Level: 85, CreatedAt: seededAt},
		{ID: "skill006", Name: "Responsive Design", Level: 90, CreatedAt: seededAt},
		{ID: "skill007", Name: "Figma", Level: 88, CreatedAt: seededAt},
		{ID: "skill008", Name: "Bootstrap", Level: 92, CreatedAt: seededAt},
	}
}

// Portfolio returns the default portfolio collection.
func Portfolio() []model.PortfolioItem {
	return []model.PortfolioItem{
		{ID: "port001", Title: "Brand Identity", Description: "Visual Design", Category: "branding", Image: "images/work_1_md.webp", CreatedAt: seededAt},
		{ID: "port002", Title: "Creative Artwork", Description: "Illustration", Category: "illustration", Image: "images/work_2_md.webp", CreatedAt: seededAt},
		{ID: "port003", Title: "Package Design", Description: "Branding", Category: "branding", Image: "images/work_3_md.webp", CreatedAt: seededAt},
		{ID: "port004", Title: "Web Design", Description: "UI/UX Design", Category: "web", Image: "images/work_4_full.webp", CreatedAt: seededAt},
		{ID: "port005", Title: "Digital Art", Description: "Illustration", Category: "illustration", Image: "images/work_5_md.webp", CreatedAt: seededAt},
		{ID: "port006", Title: "Brand Strategy", Description: "Visual Identity", Category: "branding", Image: "images/work_6_md.webp", CreatedAt: seededAt},
		{ID: "port007", Title: "Product Design", Description: "Packaging", Category: "packaging", Image: "images/work_7_a_md.webp", CreatedAt: seededAt},
		{ID: "port008", Title: "Web Development", Description: "Frontend Design", Category: "web", Image: "images/work_8_md.webp", CreatedAt: seededAt},
	}
}

// Stories returns the default stories collection.
func Stories() []model.StoryItem {
	return []model.StoryItem{
		{
			ID:    "story001",
			Title: "K2 - The Savage Mountain",
			Content: "The world's second highest peak, standing tall in my homeland. K2, also known as " +
				"Mount Godwin-Austen, is the second-highest mountain on Earth at 8,611 meters above sea " +
				"level. Located in the Karakoram range on the border between Pakistan and China, it's " +
				"considered one of the most difficult and dangerous mountains to climb.",
			Image:     "K2.webp",
			CreatedAt: seededAt,
		},
		{
			ID:    "story002",
			Title: "Mountain Spirit",
			Content: "The resilient people of the peaks. The mountain communities of Gilgit-Baltistan have " +
				"lived in harmony with these towering giants for centuries, developing unique cultures, " +
				"traditions, and ways of life adapted to the high-altitude environment.",
			Image:     "man.webp",
			CreatedAt: seededAt,
		},
		{
			ID:    "story003",
			Title: "Ancient Glaciers",
			Content: "Where ice meets sky in Gilgit-Baltistan. The region is home to some of the longest " +
				"glaciers outside the polar regions, including the Baltoro Glacier and Biafo Glacier. " +
				"These ancient rivers of ice have shaped the landscape over millennia.",
			Image:     "glashier.webp",
			CreatedAt: seededAt,
		},
		{
			ID:    "story004",
			Title: "Crystal Waters",
			Content: "Pristine alpine lakes of the north. The lakes of Gilgit-Baltistan, fed by glacial " +
				"meltwater, are known for their stunning turquoise and emerald colors. These natural " +
				"wonders attract visitors from around the world.",
			Image:     "lake.webp",
			CreatedAt: seededAt,
		},
		{
			ID:    "story005",
			Title: "Journey Through Mountains",
			Content: "Roads that connect dreams to reality. The Karakoram Highway, one of the highest paved " +
				"international roads in the world, winds through these mountains, connecting Pakistan to " +
				"China and offering breathtaking views at every turn.",
			Image:     "road.webp",
			CreatedAt: seededAt,
		},
	}
}
