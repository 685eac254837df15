// Package seed upserts the default storefront content so a fresh install
// shows a complete site. Running it twice is a no-op: every write targets a
// fixed record id.
package seed

import (
	"github.com/Denise-hub/DenModa-Manufacturer/internal/adapter/repository"
	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

// Run writes the default content for every collection.
func Run(app core.App) error {
	store := repository.NewStore(app)

	for _, s := range domain.DefaultHeroSlides() {
		if err := store.Upsert(domain.CollectionHeroSlides, s.ID, map[string]any{
			"title":          s.Title,
			"highlight_text": s.HighlightText,
			"description":    s.Description,
			"order":          s.Order,
			"is_active":      s.IsActive,
		}); err != nil {
			return err
		}
	}

	for _, b := range domain.DefaultIconBoxes() {
		if err := store.Upsert(domain.CollectionIconBoxes, b.ID, map[string]any{
			"icon":        b.Icon,
			"title":       b.Title,
			"description": b.Description,
			"link":        b.Link,
			"order":       b.Order,
			"is_active":   b.IsActive,
		}); err != nil {
			return err
		}
	}

	for _, s := range domain.DefaultServices() {
		if err := store.Upsert(domain.CollectionServices, s.ID, map[string]any{
			"icon":        s.Icon,
			"title":       s.Title,
			"description": s.Description,
			"order":       s.Order,
			"is_active":   s.IsActive,
		}); err != nil {
			return err
		}
	}

	for _, p := range domain.DefaultProducts() {
		if err := store.Upsert(domain.CollectionProducts, p.ID, map[string]any{
			"title":       p.Title,
			"category":    p.Category,
			"image":       p.Image,
			"description": p.Description,
			"price":       p.Price,
			"sizes":       p.Sizes,
			"is_new":      p.IsNew,
			"is_featured": p.IsFeatured,
			"order":       p.Order,
			"is_active":   p.IsActive,
		}); err != nil {
			return err
		}
	}

	for _, p := range domain.DefaultPricing() {
		if err := store.Upsert(domain.CollectionPricing, p.ID, map[string]any{
			"category":    p.Category,
			"price":       p.Price,
			"currency":    p.Currency,
			"unit":        p.Unit,
			"features":    p.Features,
			"is_featured": p.IsFeatured,
			"badge":       p.Badge,
			"order":       p.Order,
			"is_active":   p.IsActive,
		}); err != nil {
			return err
		}
	}

	for _, f := range domain.DefaultFAQs() {
		if err := store.Upsert(domain.CollectionFAQs, f.ID, map[string]any{
			"question":  f.Question,
			"answer":    f.Answer,
			"order":     f.Order,
			"is_active": f.IsActive,
		}); err != nil {
			return err
		}
	}

	repo := repository.NewContentRepo(app)
	if err := repo.SaveAbout(domain.DefaultAbout()); err != nil {
		return err
	}
	if err := repo.SaveContact(domain.DefaultContact()); err != nil {
		return err
	}
	if err := repo.SaveSiteSettings(domain.DefaultSiteSettings()); err != nil {
		return err
	}

	log.Info().Msg("default content seeded")
	return nil
}
