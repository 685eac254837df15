package service

import (
	"context"
	"sync"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ContentSnapshot is the immutable view of the site content handed to the
// rendering layer. Collections that were empty in the store carry the
// baked-in defaults, so the public site never renders an empty section.
type ContentSnapshot struct {
	HeroSlides   []*core.HeroSlide
	IconBoxes    []*core.IconBox
	About        *core.About
	Services     []*core.Service
	Products     []*core.Product
	Pricing      []*core.PricingPlan
	Team         []*core.TeamMember
	Contact      *core.ContactInfo
	FAQs         []*core.FAQ
	SiteSettings *core.SiteSettings
}

// ContentService is the single source of truth for public and admin
// content. It fetches every collection once on startup and re-fetches a
// collection on demand after each admin mutation. No TTL, no background
// revalidation: a mutation is settled only after its blocking refresh.
type ContentService struct {
	content  core.ContentRepository
	products core.ProductRepository
	log      zerolog.Logger

	mu       sync.RWMutex
	snapshot ContentSnapshot
}

func NewContentService(content core.ContentRepository, products core.ProductRepository) *ContentService {
	return &ContentService{
		content:  content,
		products: products,
		log:      log.With().Str("component", "content").Logger(),
	}
}

// LoadAll fetches every collection in parallel and replaces the snapshot.
// Per-collection failures fall back to the defaults for that collection
// instead of failing the whole load.
func (s *ContentService) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	refreshers := []func() error{
		s.RefreshHeroSlides,
		s.RefreshIconBoxes,
		s.RefreshAbout,
		s.RefreshServices,
		s.RefreshProducts,
		s.RefreshPricing,
		s.RefreshTeam,
		s.RefreshContact,
		s.RefreshFAQs,
		s.RefreshSiteSettings,
	}
	for _, refresh := range refreshers {
		wg.Add(1)
		go func(refresh func() error) {
			defer wg.Done()
			if err := refresh(); err != nil {
				s.log.Warn().Err(err).Msg("initial content load failed for a collection")
			}
		}(refresh)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn().Msg("content load cancelled before completion")
	}
}

// Snapshot returns the current content view.
func (s *ContentService) Snapshot() ContentSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *ContentService) RefreshHeroSlides() error {
	slides, err := s.content.HeroSlides(true)
	s.mu.Lock()
	s.snapshot.HeroSlides = core.ResolveContent(slides, core.DefaultHeroSlides())
	s.mu.Unlock()
	return err
}

func (s *ContentService) RefreshIconBoxes() error {
	boxes, err := s.content.IconBoxes(true)
	s.mu.Lock()
	s.snapshot.IconBoxes = core.ResolveContent(boxes, core.DefaultIconBoxes())
	s.mu.Unlock()
	return err
}

func (s *ContentService) RefreshAbout() error {
	about, err := s.content.About()
	if about == nil {
		about = core.DefaultAbout()
	}
	s.mu.Lock()
	s.snapshot.About = about
	s.mu.Unlock()
	return err
}

func (s *ContentService) RefreshServices() error {
	services, err := s.content.Services(true)
	s.mu.Lock()
	s.snapshot.Services = core.ResolveContent(services, core.DefaultServices())
	s.mu.Unlock()
	return err
}

// RefreshProducts loads the active products shown on the public site. The
// admin manager lists drafts too, but it reads the repository directly so
// inactive products never enter this snapshot.
func (s *ContentService) RefreshProducts() error {
	products, err := s.products.Products(true)
	s.mu.Lock()
	s.snapshot.Products = core.ResolveContent(products, core.DefaultProducts())
	s.mu.Unlock()
	return err
}

func (s *ContentService) RefreshPricing() error {
	pricing, err := s.content.Pricing(true)
	s.mu.Lock()
	s.snapshot.Pricing = core.ResolveContent(pricing, core.DefaultPricing())
	s.mu.Unlock()
	return err
}

func (s *ContentService) RefreshTeam() error {
	team, err := s.content.Team(true)
	s.mu.Lock()
	s.snapshot.Team = team
	s.mu.Unlock()
	return err
}

func (s *ContentService) RefreshContact() error {
	contact, err := s.content.Contact()
	if contact == nil {
		contact = core.DefaultContact()
	}
	s.mu.Lock()
	s.snapshot.Contact = contact
	s.mu.Unlock()
	return err
}

func (s *ContentService) RefreshFAQs() error {
	faqs, err := s.content.FAQs(true)
	s.mu.Lock()
	s.snapshot.FAQs = core.ResolveContent(faqs, core.DefaultFAQs())
	s.mu.Unlock()
	return err
}

func (s *ContentService) RefreshSiteSettings() error {
	settings, err := s.content.SiteSettings()
	if settings == nil {
		settings = core.DefaultSiteSettings()
	}
	s.mu.Lock()
	s.snapshot.SiteSettings = settings
	s.mu.Unlock()
	return err
}
