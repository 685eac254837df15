package handlers

import (
	"html/template"
	"net/http"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/adapter/repository"
	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"
	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

// SiteHandler manages the three singleton sections: about, contact info
// and global site settings. Saves are always upserts against the fixed
// record, so the forms work identically before and after first seed.
type SiteHandler struct {
	Templates *template.Template
	Repo      *repository.ContentRepo
	Content   *service.ContentService
	Uploader  domain.MediaUploader
}

// ShowAbout renders the about editor. GET /admin/about
func (h *SiteHandler) ShowAbout(e *core.RequestEvent) error {
	about := h.Content.Snapshot().About

	data := map[string]any{
		"About":    about,
		"IsAdmin":  true,
		"PageType": "about",
	}
	return RenderPage(h.Templates, e, "layouts/admin.html", "admin/about.html", data)
}

// SaveAbout upserts the about singleton. POST /admin/about
func (h *SiteHandler) SaveAbout(e *core.RequestEvent) error {
	about := h.Content.Snapshot().About
	if about == nil {
		about = domain.DefaultAbout()
	}

	about.Title = e.Request.FormValue("title")
	about.Subtitle = e.Request.FormValue("subtitle")
	about.Description = e.Request.FormValue("description")
	about.Features = splitLines(e.Request.FormValue("features"))

	if uploaded := h.sectionImage(e, "image", "about"); uploaded != nil {
		about.Image = uploaded.URL
		about.ImagePublicID = uploaded.PublicID
	}

	if err := h.Repo.SaveAbout(about); err != nil {
		log.Error().Err(err).Msg("about save failed")
		return e.String(500, "Failed to save")
	}
	if err := h.Content.RefreshAbout(); err != nil {
		log.Warn().Err(err).Msg("about refresh failed after save")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/about")
}

// ShowContact renders the contact info editor. GET /admin/contact
func (h *SiteHandler) ShowContact(e *core.RequestEvent) error {
	data := map[string]any{
		"Contact":  h.Content.Snapshot().Contact,
		"IsAdmin":  true,
		"PageType": "contact",
	}
	return RenderPage(h.Templates, e, "layouts/admin.html", "admin/contact.html", data)
}

// SaveContact upserts the contact singleton. POST /admin/contact
func (h *SiteHandler) SaveContact(e *core.RequestEvent) error {
	contact := &domain.ContactInfo{
		Address:   e.Request.FormValue("address"),
		Email:     e.Request.FormValue("email"),
		Phone:     e.Request.FormValue("phone"),
		WhatsApp:  e.Request.FormValue("whatsapp"),
		Facebook:  e.Request.FormValue("facebook"),
		YouTube:   e.Request.FormValue("youtube"),
		LinkedIn:  e.Request.FormValue("linkedin"),
		Instagram: e.Request.FormValue("instagram"),
	}

	if err := h.Repo.SaveContact(contact); err != nil {
		log.Error().Err(err).Msg("contact save failed")
		return e.String(500, "Failed to save")
	}
	if err := h.Content.RefreshContact(); err != nil {
		log.Warn().Err(err).Msg("contact refresh failed after save")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/contact")
}

// ShowSettings renders the site settings editor. GET /admin/settings
func (h *SiteHandler) ShowSettings(e *core.RequestEvent) error {
	data := map[string]any{
		"Settings": h.Content.Snapshot().SiteSettings,
		"IsAdmin":  true,
		"PageType": "settings",
	}
	return RenderPage(h.Templates, e, "layouts/admin.html", "admin/settings.html", data)
}

// SaveSettings upserts the site settings singleton. Image fields keep
// their stored values unless a new file arrives. POST /admin/settings
func (h *SiteHandler) SaveSettings(e *core.RequestEvent) error {
	settings := h.Content.Snapshot().SiteSettings
	if settings == nil {
		settings = domain.DefaultSiteSettings()
	}

	settings.SiteName = e.Request.FormValue("site_name")
	settings.Tagline = e.Request.FormValue("tagline")
	settings.FooterAbout = e.Request.FormValue("footer_about")
	settings.SeoTitle = e.Request.FormValue("seo_title")
	settings.SeoDescription = e.Request.FormValue("seo_description")
	settings.SeoKeywords = e.Request.FormValue("seo_keywords")

	if uploaded := h.sectionImage(e, "logo", "site"); uploaded != nil {
		settings.Logo = uploaded.URL
		settings.LogoPublicID = uploaded.PublicID
	}
	if uploaded := h.sectionImage(e, "footer_logo", "site"); uploaded != nil {
		settings.FooterLogo = uploaded.URL
		settings.FooterLogoPublicID = uploaded.PublicID
	}
	if uploaded := h.sectionImage(e, "hero_background", "site"); uploaded != nil {
		settings.HeroBackground = uploaded.URL
		settings.HeroBackgroundPublicID = uploaded.PublicID
	}

	if err := h.Repo.SaveSiteSettings(settings); err != nil {
		log.Error().Err(err).Msg("settings save failed")
		return e.String(500, "Failed to save")
	}
	if err := h.Content.RefreshSiteSettings(); err != nil {
		log.Warn().Err(err).Msg("settings refresh failed after save")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/settings")
}

// sectionImage uploads one named form file, logging instead of failing the
// save: singleton text edits must not be lost to a CDN hiccup.
func (h *SiteHandler) sectionImage(e *core.RequestEvent, field, section string) *domain.UploadResult {
	file, _, err := e.Request.FormFile(field)
	if err != nil {
		return nil
	}
	defer file.Close()

	uploaded, err := h.Uploader.Upload(e.Request.Context(), file, section)
	if err != nil {
		log.Warn().Err(err).Str("field", field).Msg("image upload failed, keeping stored image")
		return nil
	}
	return uploaded
}
