package repository

import (
	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/pocketbase/pocketbase/core"
)

// ContentRepo serves the marketing content collections: hero slides, icon
// boxes, services, pricing, team, faqs and the three singletons.
type ContentRepo struct {
	store *Store
}

func NewContentRepo(app core.App) *ContentRepo {
	return &ContentRepo{store: NewStore(app)}
}

func (r *ContentRepo) list(collection string, activeOnly bool) ([]*core.Record, error) {
	if activeOnly {
		return r.store.ListActive(collection)
	}
	return r.store.ListAll(collection, "order")
}

func (r *ContentRepo) HeroSlides(activeOnly bool) ([]*domain.HeroSlide, error) {
	records, err := r.list(domain.CollectionHeroSlides, activeOnly)
	if err != nil {
		return nil, err
	}
	slides := make([]*domain.HeroSlide, 0, len(records))
	for _, rec := range records {
		slides = append(slides, &domain.HeroSlide{
			ID:            rec.Id,
			Title:         rec.GetString("title"),
			HighlightText: rec.GetString("highlight_text"),
			Description:   rec.GetString("description"),
			Order:         rec.GetInt("order"),
			IsActive:      rec.GetBool("is_active"),
			Created:       rec.GetString("created"),
			Updated:       rec.GetString("updated"),
		})
	}
	return slides, nil
}

func (r *ContentRepo) IconBoxes(activeOnly bool) ([]*domain.IconBox, error) {
	records, err := r.list(domain.CollectionIconBoxes, activeOnly)
	if err != nil {
		return nil, err
	}
	boxes := make([]*domain.IconBox, 0, len(records))
	for _, rec := range records {
		boxes = append(boxes, &domain.IconBox{
			ID:          rec.Id,
			Icon:        rec.GetString("icon"),
			Title:       rec.GetString("title"),
			Description: rec.GetString("description"),
			Link:        rec.GetString("link"),
			Order:       rec.GetInt("order"),
			IsActive:    rec.GetBool("is_active"),
			Created:     rec.GetString("created"),
			Updated:     rec.GetString("updated"),
		})
	}
	return boxes, nil
}

func (r *ContentRepo) Services(activeOnly bool) ([]*domain.Service, error) {
	records, err := r.list(domain.CollectionServices, activeOnly)
	if err != nil {
		return nil, err
	}
	services := make([]*domain.Service, 0, len(records))
	for _, rec := range records {
		services = append(services, &domain.Service{
			ID:          rec.Id,
			Icon:        rec.GetString("icon"),
			Title:       rec.GetString("title"),
			Description: rec.GetString("description"),
			Order:       rec.GetInt("order"),
			IsActive:    rec.GetBool("is_active"),
			Created:     rec.GetString("created"),
			Updated:     rec.GetString("updated"),
		})
	}
	return services, nil
}

func (r *ContentRepo) Pricing(activeOnly bool) ([]*domain.PricingPlan, error) {
	records, err := r.list(domain.CollectionPricing, activeOnly)
	if err != nil {
		return nil, err
	}
	plans := make([]*domain.PricingPlan, 0, len(records))
	for _, rec := range records {
		plans = append(plans, &domain.PricingPlan{
			ID:         rec.Id,
			Category:   rec.GetString("category"),
			Price:      rec.GetFloat("price"),
			Currency:   rec.GetString("currency"),
			Unit:       rec.GetString("unit"),
			Features:   rec.GetStringSlice("features"),
			IsFeatured: rec.GetBool("is_featured"),
			Badge:      rec.GetString("badge"),
			Order:      rec.GetInt("order"),
			IsActive:   rec.GetBool("is_active"),
			Created:    rec.GetString("created"),
			Updated:    rec.GetString("updated"),
		})
	}
	return plans, nil
}

func (r *ContentRepo) Team(activeOnly bool) ([]*domain.TeamMember, error) {
	records, err := r.list(domain.CollectionTeam, activeOnly)
	if err != nil {
		return nil, err
	}
	members := make([]*domain.TeamMember, 0, len(records))
	for _, rec := range records {
		links := map[string]string{}
		rec.UnmarshalJSONField("social_links", &links)
		members = append(members, &domain.TeamMember{
			ID:            rec.Id,
			Name:          rec.GetString("name"),
			Role:          rec.GetString("role"),
			Description:   rec.GetString("description"),
			Image:         rec.GetString("image"),
			ImagePublicID: rec.GetString("image_public_id"),
			SocialLinks:   links,
			Order:         rec.GetInt("order"),
			IsActive:      rec.GetBool("is_active"),
			Created:       rec.GetString("created"),
			Updated:       rec.GetString("updated"),
		})
	}
	return members, nil
}

func (r *ContentRepo) FAQs(activeOnly bool) ([]*domain.FAQ, error) {
	records, err := r.list(domain.CollectionFAQs, activeOnly)
	if err != nil {
		return nil, err
	}
	faqs := make([]*domain.FAQ, 0, len(records))
	for _, rec := range records {
		faqs = append(faqs, &domain.FAQ{
			ID:       rec.Id,
			Question: rec.GetString("question"),
			Answer:   rec.GetString("answer"),
			Order:    rec.GetInt("order"),
			IsActive: rec.GetBool("is_active"),
			Created:  rec.GetString("created"),
			Updated:  rec.GetString("updated"),
		})
	}
	return faqs, nil
}

// ---------------------------------------------------------------------------
// Singletons. All resolve to the fixed "main" record and are written via
// upsert only, so seeding and saving are idempotent.

func (r *ContentRepo) About() (*domain.About, error) {
	rec, err := r.store.GetByID(domain.CollectionAbout, domain.SingletonID)
	if err != nil || rec == nil {
		return nil, err
	}
	return &domain.About{
		ID:            rec.Id,
		Title:         rec.GetString("title"),
		Subtitle:      rec.GetString("subtitle"),
		Description:   rec.GetString("description"),
		Image:         rec.GetString("image"),
		ImagePublicID: rec.GetString("image_public_id"),
		Features:      rec.GetStringSlice("features"),
		Created:       rec.GetString("created"),
		Updated:       rec.GetString("updated"),
	}, nil
}

func (r *ContentRepo) SaveAbout(a *domain.About) error {
	return r.store.Upsert(domain.CollectionAbout, domain.SingletonID, map[string]any{
		"title":           a.Title,
		"subtitle":        a.Subtitle,
		"description":     a.Description,
		"image":           a.Image,
		"image_public_id": a.ImagePublicID,
		"features":        a.Features,
	})
}

func (r *ContentRepo) Contact() (*domain.ContactInfo, error) {
	rec, err := r.store.GetByID(domain.CollectionContact, domain.SingletonID)
	if err != nil || rec == nil {
		return nil, err
	}
	return &domain.ContactInfo{
		ID:        rec.Id,
		Address:   rec.GetString("address"),
		Email:     rec.GetString("email"),
		Phone:     rec.GetString("phone"),
		WhatsApp:  rec.GetString("whatsapp"),
		Facebook:  rec.GetString("facebook"),
		YouTube:   rec.GetString("youtube"),
		LinkedIn:  rec.GetString("linkedin"),
		Instagram: rec.GetString("instagram"),
		Created:   rec.GetString("created"),
		Updated:   rec.GetString("updated"),
	}, nil
}

func (r *ContentRepo) SaveContact(c *domain.ContactInfo) error {
	return r.store.Upsert(domain.CollectionContact, domain.SingletonID, map[string]any{
		"address":   c.Address,
		"email":     c.Email,
		"phone":     c.Phone,
		"whatsapp":  c.WhatsApp,
		"facebook":  c.Facebook,
		"youtube":   c.YouTube,
		"linkedin":  c.LinkedIn,
		"instagram": c.Instagram,
	})
}

func (r *ContentRepo) SiteSettings() (*domain.SiteSettings, error) {
	rec, err := r.store.GetByID(domain.CollectionSiteSettings, domain.SingletonID)
	if err != nil || rec == nil {
		return nil, err
	}
	return &domain.SiteSettings{
		ID:                     rec.Id,
		SiteName:               rec.GetString("site_name"),
		Tagline:                rec.GetString("tagline"),
		Logo:                   rec.GetString("logo"),
		LogoPublicID:           rec.GetString("logo_public_id"),
		FooterLogo:             rec.GetString("footer_logo"),
		FooterLogoPublicID:     rec.GetString("footer_logo_public_id"),
		HeroBackground:         rec.GetString("hero_background"),
		HeroBackgroundPublicID: rec.GetString("hero_background_public_id"),
		FooterAbout:            rec.GetString("footer_about"),
		SeoTitle:               rec.GetString("seo_title"),
		SeoDescription:         rec.GetString("seo_description"),
		SeoKeywords:            rec.GetString("seo_keywords"),
		Created:                rec.GetString("created"),
		Updated:                rec.GetString("updated"),
	}, nil
}

func (r *ContentRepo) SaveSiteSettings(s *domain.SiteSettings) error {
	return r.store.Upsert(domain.CollectionSiteSettings, domain.SingletonID, map[string]any{
		"site_name":                 s.SiteName,
		"tagline":                   s.Tagline,
		"logo":                      s.Logo,
		"logo_public_id":            s.LogoPublicID,
		"footer_logo":               s.FooterLogo,
		"footer_logo_public_id":     s.FooterLogoPublicID,
		"hero_background":           s.HeroBackground,
		"hero_background_public_id": s.HeroBackgroundPublicID,
		"footer_about":              s.FooterAbout,
		"seo_title":                 s.SeoTitle,
		"seo_description":           s.SeoDescription,
		"seo_keywords":              s.SeoKeywords,
	})
}

// ---------------------------------------------------------------------------
// Generic content CRUD used by the admin managers for the list collections.

func (r *ContentRepo) CreateIn(collection string, fields map[string]any) (string, error) {
	return r.store.Create(collection, fields)
}

func (r *ContentRepo) UpdateIn(collection, id string, fields map[string]any) error {
	return r.store.Update(collection, id, fields)
}

func (r *ContentRepo) DeleteIn(collection, id string) error {
	return r.store.Delete(collection, id)
}

func (r *ContentRepo) UpsertIn(collection, id string, fields map[string]any) error {
	return r.store.Upsert(collection, id, fields)
}
