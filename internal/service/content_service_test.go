package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentRepo struct {
	heroSlides []*core.HeroSlide
	iconBoxes  []*core.IconBox
	services   []*core.Service
	pricing    []*core.PricingPlan
	team       []*core.TeamMember
	faqs       []*core.FAQ

	about    *core.About
	contact  *core.ContactInfo
	settings *core.SiteSettings

	err error
}

func (f *fakeContentRepo) HeroSlides(bool) ([]*core.HeroSlide, error) { return f.heroSlides, f.err }
func (f *fakeContentRepo) IconBoxes(bool) ([]*core.IconBox, error)    { return f.iconBoxes, f.err }
func (f *fakeContentRepo) Services(bool) ([]*core.Service, error)     { return f.services, f.err }
func (f *fakeContentRepo) Pricing(bool) ([]*core.PricingPlan, error)  { return f.pricing, f.err }
func (f *fakeContentRepo) Team(bool) ([]*core.TeamMember, error)      { return f.team, f.err }
func (f *fakeContentRepo) FAQs(bool) ([]*core.FAQ, error)             { return f.faqs, f.err }

func (f *fakeContentRepo) About() (*core.About, error)               { return f.about, f.err }
func (f *fakeContentRepo) Contact() (*core.ContactInfo, error)       { return f.contact, f.err }
func (f *fakeContentRepo) SiteSettings() (*core.SiteSettings, error) { return f.settings, f.err }

func (f *fakeContentRepo) SaveAbout(a *core.About) error { f.about = a; return nil }

func (f *fakeContentRepo) SaveContact(c *core.ContactInfo) error { f.contact = c; return nil }

func (f *fakeContentRepo) SaveSiteSettings(s *core.SiteSettings) error { f.settings = s; return nil }

func TestLoadAll_EmptyStoreFallsBackToDefaults(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, &fakeProductRepo{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	svc.LoadAll(ctx)

	snap := svc.Snapshot()
	require.NotEmpty(t, snap.HeroSlides)
	assert.Equal(t, "slide1", snap.HeroSlides[0].ID)
	assert.Len(t, snap.FAQs, 3)
	assert.Equal(t, "faq1", snap.FAQs[0].ID)
	assert.Len(t, snap.Products, 4)
	require.NotNil(t, snap.About)
	assert.Equal(t, "About DenModa", snap.About.Title)
	require.NotNil(t, snap.Contact)
	assert.Equal(t, "254798257117", snap.Contact.WhatsApp)
	require.NotNil(t, snap.SiteSettings)
	assert.Equal(t, "DenModa", snap.SiteSettings.SiteName)
	assert.Empty(t, snap.Team, "team has no baked-in fallback")
}

func TestLoadAll_StoredContentReplacesDefaults(t *testing.T) {
	repo := &fakeContentRepo{
		heroSlides: []*core.HeroSlide{{ID: "custom", Title: "Hand stitched"}},
		about:      &core.About{ID: core.SingletonID, Title: "Our workshop"},
	}
	svc := NewContentService(repo, &fakeProductRepo{})

	svc.LoadAll(context.Background())

	snap := svc.Snapshot()
	require.Len(t, snap.HeroSlides, 1)
	assert.Equal(t, "custom", snap.HeroSlides[0].ID)
	assert.Equal(t, "Our workshop", snap.About.Title)
}

func TestLoadAll_FailedCollectionStillGetsDefaults(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{err: errors.New("store down")}, &fakeProductRepo{})

	svc.LoadAll(context.Background())

	snap := svc.Snapshot()
	assert.NotEmpty(t, snap.HeroSlides)
	assert.NotNil(t, snap.Contact)
}

func TestRefreshProducts_ActiveOnly(t *testing.T) {
	products := &fakeProductRepo{products: []*core.Product{
		{ID: "live", Title: "Live", IsActive: true},
		{ID: "draft", Title: "Draft", IsActive: false},
	}}
	svc := NewContentService(&fakeContentRepo{}, products)

	require.NoError(t, svc.RefreshProducts())
	snap := svc.Snapshot()
	require.Len(t, snap.Products, 1, "drafts never enter the public snapshot")
	assert.Equal(t, "live", snap.Products[0].ID)
}

func TestRefreshContact_NilSingletonUsesDefault(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{}, &fakeProductRepo{})

	require.NoError(t, svc.RefreshContact())
	contact := svc.Snapshot().Contact
	require.NotNil(t, contact)
	assert.Equal(t, "+254 798 257 117", contact.Phone)
}
