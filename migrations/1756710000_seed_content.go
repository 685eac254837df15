package migrations

import (
	"github.com/Denise-hub/DenModa-Manufacturer/internal/seed"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Seeds the default storefront content so a fresh database renders a
// complete site. The seed is upsert-based, safe to re-run.
func init() {
	m.Register(func(app core.App) error {
		return seed.Run(app)
	}, nil)
}
