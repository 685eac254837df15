package middleware

import (
	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"

	"github.com/pocketbase/pocketbase/core"
)

// InjectSiteSettings places the global site settings in the request context
// so every layout can render the name, logo and SEO tags without each
// handler fetching them.
func InjectSiteSettings(content *service.ContentService) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		snap := content.Snapshot()
		e.Set("SiteSettings", snap.SiteSettings)
		return e.Next()
	}
}
