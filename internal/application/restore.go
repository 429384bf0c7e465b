package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tashu/studio/internal/domain/model"
	"github.com/tashu/studio/internal/domain/port/driven"
	"github.com/tashu/studio/internal/seed"
)

// RestoreService replaces every content collection with the bundled seed
// data in one administrative action. Messages are deliberately left alone to
// preserve contact history. The operation is sequential and not
// transactional: a failure partway leaves the collections written so far
// restored and the rest untouched.
type RestoreService struct {
	about     driven.DocumentStore[model.AboutDocument]
	settings  driven.DocumentStore[model.SettingsDocument]
	portfolio driven.CollectionStore[model.PortfolioItem]
	services  driven.CollectionStore[model.ServiceItem]
	skills    driven.CollectionStore[model.SkillItem]
	stories   driven.CollectionStore[model.StoryItem]
	logger    *slog.Logger
}

// NewRestoreService creates a RestoreService over the non-message content
// stores.
func NewRestoreService(
	about driven.DocumentStore[model.AboutDocument],
	settings driven.DocumentStore[model.SettingsDocument],
	portfolio driven.CollectionStore[model.PortfolioItem],
	services driven.CollectionStore[model.ServiceItem],
	skills driven.CollectionStore[model.SkillItem],
	stories driven.CollectionStore[model.StoryItem],
	logger *slog.Logger,
) *RestoreService {
	return &RestoreService{
		about:     about,
		settings:  settings,
		portfolio: portfolio,
		services:  services,
		skills:    skills,
		stories:   stories,
		logger:    logger,
	}
}

// Restore overwrites each collection with its seed value.
func (r *RestoreService) Restore(ctx context.Context) error {
	if err := r.about.Put(ctx, seed.About()); err != nil {
		return fmt.Errorf("restore about: %w", err)
	}
	if err := r.services.ReplaceAll(ctx, seed.Services()); err != nil {
		return fmt.Errorf("restore services: %w", err)
	}
	if err := r.skills.ReplaceAll(ctx, seed.Skills()); err != nil {
		return fmt.Errorf("restore skills: %w", err)
	}
	if err := r.portfolio.ReplaceAll(ctx, seed.Portfolio()); err != nil {
		return fmt.Errorf("restore portfolio: %w", err)
	}
	if err := r.stories.ReplaceAll(ctx, seed.Stories()); err != nil {
		return fmt.Errorf("restore stories: %w", err)
	}
	if err := r.settings.Put(ctx, seed.Settings()); err != nil {
		return fmt.Errorf("restore settings: %w", err)
	}

	r.logger.Info("default content restored")
	return nil
}
