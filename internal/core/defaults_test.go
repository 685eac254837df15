package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveContent(t *testing.T) {
	defaults := DefaultFAQs()

	assert.Equal(t, defaults, ResolveContent(nil, defaults))
	assert.Equal(t, defaults, ResolveContent([]*FAQ{}, defaults))

	fetched := []*FAQ{{ID: "faq9", Question: "Custom?"}}
	assert.Equal(t, fetched, ResolveContent(fetched, defaults))
}

func TestDefaults_FixedIDs(t *testing.T) {
	// seed ids are stable so re-seeding upserts instead of duplicating
	assert.Equal(t, "faq1", DefaultFAQs()[0].ID)
	assert.Equal(t, "slide1", DefaultHeroSlides()[0].ID)
	assert.Equal(t, "p1", DefaultProducts()[0].ID)
	assert.Equal(t, SingletonID, DefaultAbout().ID)
	assert.Equal(t, SingletonID, DefaultContact().ID)
	assert.Equal(t, SingletonID, DefaultSiteSettings().ID)
}

func TestDefaultProducts_Catalog(t *testing.T) {
	products := DefaultProducts()
	require.Len(t, products, 4)

	p := products[0]
	assert.Equal(t, "Classic Leather Sandal", p.Title)
	assert.Equal(t, CategoryMan, p.Category)
	assert.Equal(t, float64(15), p.Price)
	assert.True(t, p.IsActive)

	for _, p := range products {
		assert.Contains(t, []string{CategoryMan, CategoryWoman, CategoryNew}, p.Category, "product %s", p.ID)
	}
}

func TestDefaultProducts_ImagesResolveUnderAssets(t *testing.T) {
	// the static file route only serves /assets/...
	for _, p := range DefaultProducts() {
		assert.True(t, strings.HasPrefix(p.Image, "/assets/"), "product %s image %q", p.ID, p.Image)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, ValidOrderStatus(status), status)
	}
	assert.False(t, ValidOrderStatus("archived"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("Pending"))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Men", CategoryLabel(CategoryMan))
	assert.Equal(t, "Women", CategoryLabel(CategoryWoman))
	assert.Equal(t, "New Arrival", CategoryLabel(CategoryNew))
	assert.Equal(t, "unknown", CategoryLabel("unknown"))
}
