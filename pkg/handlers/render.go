package handlers

import (
	"html/template"
	"path/filepath"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

// RenderPage renders a page inside a layout. HTMX navigation requests
// (HX-Target=main-content) get only the "content" block so the client can
// swap without re-rendering header and footer.
//
// The site settings placed in the request scope by the middleware are
// merged into map data under "Settings", so layouts can always render the
// site name, logo and SEO tags. A handler-provided "Settings" wins.
func RenderPage(t *template.Template, e *core.RequestEvent, layoutName string, pagePath string, data any) error {
	if m, ok := data.(map[string]any); ok {
		if _, exists := m["Settings"]; !exists {
			if settings := e.Get("SiteSettings"); settings != nil {
				m["Settings"] = settings
			}
		}
	}

	tmpl, err := t.Clone()
	if err != nil {
		log.Error().Err(err).Msg("template clone failed")
		return e.String(500, "Template error")
	}

	fullPath := filepath.Join("views", "pages", pagePath)
	if _, err = tmpl.ParseFiles(fullPath); err != nil {
		log.Error().Err(err).Str("page", fullPath).Msg("page template parse failed")
		return e.String(500, "Page not found")
	}

	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")

	isHtmxNav := e.Request.Header.Get("HX-Request") == "true" &&
		e.Request.Header.Get("HX-Target") == "main-content"

	target := layoutName
	if isHtmxNav {
		target = "content"
	}
	if err := tmpl.ExecuteTemplate(e.Response, target, data); err != nil {
		log.Error().Err(err).Str("template", target).Msg("render failed")
		return e.String(500, "Render error")
	}
	return nil
}
