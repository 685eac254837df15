package migrations

import (
	"testing"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/seed"

	"github.com/pocketbase/pocketbase/core"
	_ "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tests"
)

func applyAll(t *testing.T, app *tests.TestApp) {
	t.Helper()
	if _, err := core.NewMigrationsRunner(app, core.AppMigrations).Up(); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
}

func TestMigrations_FreshDatabaseBootsSeeded(t *testing.T) {
	app, err := tests.NewTestApp()
	if err != nil {
		t.Fatal(err)
	}
	defer app.Cleanup()

	applyAll(t, app)

	// every seeded value must have survived its field validation, the
	// relative image paths included
	product, err := app.FindRecordById("products", "p1")
	if err != nil {
		t.Fatalf("seeded product missing: %v", err)
	}
	if got := product.GetString("image"); got != "/assets/img/products/product-29.JPG" {
		t.Errorf("unexpected product image %q", got)
	}
	if product.GetString("created") == "" {
		t.Error("created timestamp not stamped")
	}

	for _, ref := range [][2]string{
		{"faqs", "faq1"},
		{"hero_slides", "slide1"},
		{"icon_boxes", "box1"},
		{"services", "svc1"},
		{"pricing", "price1"},
		{"about", "main"},
		{"contact", "main"},
		{"site_settings", "main"},
	} {
		if _, err := app.FindRecordById(ref[0], ref[1]); err != nil {
			t.Errorf("seed record %s/%s missing: %v", ref[0], ref[1], err)
		}
	}
}

func TestMigrations_ReseedingIsIdempotent(t *testing.T) {
	app, err := tests.NewTestApp()
	if err != nil {
		t.Fatal(err)
	}
	defer app.Cleanup()

	applyAll(t, app)
	if err := seed.Run(app); err != nil {
		t.Fatalf("second seed run: %v", err)
	}

	total, err := app.CountRecords("faqs")
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("expected 3 faqs after reseeding, got %d", total)
	}
}
