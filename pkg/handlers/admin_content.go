package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/adapter/repository"
	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"
	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
)

// contentSection describes one list-style content manager: where its
// records live, which admin page renders it and how its form maps to
// record fields.
type contentSection struct {
	Collection string
	Page       string
	PageType   string
	Fields     func(e *core.RequestEvent) map[string]any
	Refresh    func(h *ContentHandler) error
}

// ContentHandler drives the six list-style content managers (hero slides,
// icon boxes, services, pricing, FAQs, team) with one form state machine.
type ContentHandler struct {
	Templates *template.Template
	Repo      *repository.ContentRepo
	Content   *service.ContentService
	Uploader  domain.MediaUploader
}

var contentSections = map[string]contentSection{
	"hero": {
		Collection: domain.CollectionHeroSlides,
		Page:       "admin/hero.html",
		PageType:   "hero",
		Fields: func(e *core.RequestEvent) map[string]any {
			return map[string]any{
				"title":          e.Request.FormValue("title"),
				"highlight_text": e.Request.FormValue("highlight_text"),
				"description":    e.Request.FormValue("description"),
				"order":          cast.ToInt(e.Request.FormValue("order")),
				"is_active":      e.Request.FormValue("is_active") == "on",
			}
		},
		Refresh: func(h *ContentHandler) error { return h.Content.RefreshHeroSlides() },
	},
	"icon-boxes": {
		Collection: domain.CollectionIconBoxes,
		Page:       "admin/icon_boxes.html",
		PageType:   "icon_boxes",
		Fields: func(e *core.RequestEvent) map[string]any {
			return map[string]any{
				"icon":        e.Request.FormValue("icon"),
				"title":       e.Request.FormValue("title"),
				"description": e.Request.FormValue("description"),
				"link":        e.Request.FormValue("link"),
				"order":       cast.ToInt(e.Request.FormValue("order")),
				"is_active":   e.Request.FormValue("is_active") == "on",
			}
		},
		Refresh: func(h *ContentHandler) error { return h.Content.RefreshIconBoxes() },
	},
	"services": {
		Collection: domain.CollectionServices,
		Page:       "admin/services.html",
		PageType:   "services",
		Fields: func(e *core.RequestEvent) map[string]any {
			return map[string]any{
				"icon":        e.Request.FormValue("icon"),
				"title":       e.Request.FormValue("title"),
				"description": e.Request.FormValue("description"),
				"order":       cast.ToInt(e.Request.FormValue("order")),
				"is_active":   e.Request.FormValue("is_active") == "on",
			}
		},
		Refresh: func(h *ContentHandler) error { return h.Content.RefreshServices() },
	},
	"pricing": {
		Collection: domain.CollectionPricing,
		Page:       "admin/pricing.html",
		PageType:   "pricing",
		Fields: func(e *core.RequestEvent) map[string]any {
			return map[string]any{
				"category":    e.Request.FormValue("category"),
				"price":       cast.ToFloat64(e.Request.FormValue("price")),
				"currency":    e.Request.FormValue("currency"),
				"unit":        e.Request.FormValue("unit"),
				"features":    splitLines(e.Request.FormValue("features")),
				"is_featured": e.Request.FormValue("is_featured") == "on",
				"badge":       e.Request.FormValue("badge"),
				"order":       cast.ToInt(e.Request.FormValue("order")),
				"is_active":   e.Request.FormValue("is_active") == "on",
			}
		},
		Refresh: func(h *ContentHandler) error { return h.Content.RefreshPricing() },
	},
	"faqs": {
		Collection: domain.CollectionFAQs,
		Page:       "admin/faqs.html",
		PageType:   "faqs",
		Fields: func(e *core.RequestEvent) map[string]any {
			return map[string]any{
				"question":  e.Request.FormValue("question"),
				"answer":    e.Request.FormValue("answer"),
				"order":     cast.ToInt(e.Request.FormValue("order")),
				"is_active": e.Request.FormValue("is_active") == "on",
			}
		},
		Refresh: func(h *ContentHandler) error { return h.Content.RefreshFAQs() },
	},
	"team": {
		Collection: domain.CollectionTeam,
		Page:       "admin/team.html",
		PageType:   "team",
		Fields: func(e *core.RequestEvent) map[string]any {
			return map[string]any{
				"name":        e.Request.FormValue("name"),
				"role":        e.Request.FormValue("role"),
				"description": e.Request.FormValue("description"),
				"social_links": map[string]string{
					"whatsapp":  e.Request.FormValue("social_whatsapp"),
					"facebook":  e.Request.FormValue("social_facebook"),
					"linkedin":  e.Request.FormValue("social_linkedin"),
					"instagram": e.Request.FormValue("social_instagram"),
				},
				"order":     cast.ToInt(e.Request.FormValue("order")),
				"is_active": e.Request.FormValue("is_active") == "on",
			}
		},
		Refresh: func(h *ContentHandler) error { return h.Content.RefreshTeam() },
	},
}

// List renders a section manager with its table and form state.
// GET /admin/content/{section}
func (h *ContentHandler) List(e *core.RequestEvent) error {
	section, ok := contentSections[e.Request.PathValue("section")]
	if !ok {
		return e.String(404, "Unknown section")
	}

	items, err := h.sectionItems(e.Request.PathValue("section"))
	if err != nil {
		log.Error().Err(err).Str("section", section.PageType).Msg("content list failed")
	}

	state := service.FormStateFromRequest(
		e.Request.URL.Query().Get("edit"),
		e.Request.URL.Query().Get("new") != "",
	)

	data := map[string]any{
		"Items":      items,
		"EditID":     state.EditID(),
		"FormOpen":   state.FormOpen(),
		"IsCreating": state.IsCreating(),
		"CanDelete":  state.CanDelete(),
		"IsAdmin":    true,
		"PageType":   section.PageType,
	}

	return RenderPage(h.Templates, e, "layouts/admin.html", section.Page, data)
}

// Save creates or updates a record in a section.
// POST /admin/content/{section}
func (h *ContentHandler) Save(e *core.RequestEvent) error {
	slug := e.Request.PathValue("section")
	section, ok := contentSections[slug]
	if !ok {
		return e.String(404, "Unknown section")
	}

	fields := section.Fields(e)

	// Team portraits go through the CDN like product images.
	if slug == "team" {
		if uploaded, err := h.teamImage(e); err == nil && uploaded != nil {
			fields["image"] = uploaded.URL
			fields["image_public_id"] = uploaded.PublicID
		}
	}

	id := e.Request.FormValue("id")
	var err error
	if id == "" {
		_, err = h.Repo.CreateIn(section.Collection, fields)
	} else {
		err = h.Repo.UpdateIn(section.Collection, id, fields)
	}
	if err != nil {
		log.Error().Err(err).Str("section", slug).Msg("content save failed")
		return e.String(500, "Failed to save")
	}

	if err := section.Refresh(h); err != nil {
		log.Warn().Err(err).Str("section", slug).Msg("content refresh failed after save")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/content/"+slug)
}

// Delete removes a record from a section.
// POST /admin/content/{section}/{id}/delete
func (h *ContentHandler) Delete(e *core.RequestEvent) error {
	slug := e.Request.PathValue("section")
	section, ok := contentSections[slug]
	if !ok {
		return e.String(404, "Unknown section")
	}

	if err := h.Repo.DeleteIn(section.Collection, e.Request.PathValue("id")); err != nil {
		return e.String(500, "Failed to delete")
	}
	if err := section.Refresh(h); err != nil {
		log.Warn().Err(err).Str("section", slug).Msg("content refresh failed after delete")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/content/"+slug)
}

func (h *ContentHandler) sectionItems(slug string) (any, error) {
	switch slug {
	case "hero":
		return h.Repo.HeroSlides(false)
	case "icon-boxes":
		return h.Repo.IconBoxes(false)
	case "services":
		return h.Repo.Services(false)
	case "pricing":
		return h.Repo.Pricing(false)
	case "faqs":
		return h.Repo.FAQs(false)
	case "team":
		return h.Repo.Team(false)
	}
	return nil, nil
}

func (h *ContentHandler) teamImage(e *core.RequestEvent) (*domain.UploadResult, error) {
	file, _, err := e.Request.FormFile("image")
	if err != nil {
		return nil, nil
	}
	defer file.Close()
	return h.Uploader.Upload(e.Request.Context(), file, "team")
}

// splitLines parses a textarea into one feature per non-blank line.
func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
