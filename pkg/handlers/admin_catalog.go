package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"
	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/media"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
)

// CatalogHandler is the product manager: the only back-office section with
// binary uploads.
type CatalogHandler struct {
	Templates *template.Template
	Products  domain.ProductRepository
	Content   *service.ContentService
	Uploader  domain.MediaUploader
}

// List renders the product table plus, per the query parameters, the
// create or edit form. GET /admin/products
func (h *CatalogHandler) List(e *core.RequestEvent) error {
	products, err := h.Products.Products(false)
	if err != nil {
		log.Error().Err(err).Msg("product list failed")
		products = nil
	}

	state := service.FormStateFromRequest(
		e.Request.URL.Query().Get("edit"),
		e.Request.URL.Query().Get("new") != "",
	)

	var editing *domain.Product
	if state.IsEditing() {
		editing, err = h.Products.GetByID(state.EditID())
		if err != nil || editing == nil {
			// stale edit link, fall back to browsing
			state = service.Browsing()
		}
	}

	data := map[string]any{
		"Products":       products,
		"Editing":        editing,
		"FormOpen":       state.FormOpen(),
		"IsCreating":     state.IsCreating(),
		"CanDelete":      state.CanDelete(),
		"UploadReady":    h.Uploader.Configured(),
		"Categories":     []string{domain.CategoryMan, domain.CategoryWoman, domain.CategoryNew},
		"IsAdmin":        true,
		"PageType":       "products",
		"UploadGuidance": e.Request.URL.Query().Get("upload_error"),
	}

	return RenderPage(h.Templates, e, "layouts/admin.html", "admin/products.html", data)
}

// Save creates or updates a product. A create without a title or an image
// is rejected; an update keeps the stored image when no new file arrives.
// POST /admin/products
func (h *CatalogHandler) Save(e *core.RequestEvent) error {
	id := e.Request.FormValue("id")
	title := strings.TrimSpace(e.Request.FormValue("title"))
	if title == "" {
		return e.String(400, "Product title is required")
	}

	p := &domain.Product{
		ID:          id,
		Title:       title,
		Category:    e.Request.FormValue("category"),
		Description: e.Request.FormValue("description"),
		Price:       cast.ToFloat64(e.Request.FormValue("price")),
		Sizes:       splitSizes(e.Request.FormValue("sizes")),
		OrderLink:   e.Request.FormValue("order_link"),
		IsNew:       e.Request.FormValue("is_new") == "on",
		IsFeatured:  e.Request.FormValue("is_featured") == "on",
		Order:       cast.ToInt(e.Request.FormValue("order")),
		IsActive:    e.Request.FormValue("is_active") == "on",
	}
	if p.Price < 0 {
		return e.String(400, "Price must not be negative")
	}

	if id != "" {
		existing, err := h.Products.GetByID(id)
		if err != nil || existing == nil {
			return e.String(404, "Product not found")
		}
		p.Image = existing.Image
		p.ImagePublicID = existing.ImagePublicID
	}

	if uploaded, err := h.uploadImage(e, "products"); err != nil {
		var cfgErr *media.ConfigError
		if errors.As(err, &cfgErr) {
			return e.Redirect(http.StatusSeeOther, "/admin/products?upload_error="+cfgErr.Kind)
		}
		return e.String(500, "Image upload failed")
	} else if uploaded != nil {
		p.Image = uploaded.URL
		p.ImagePublicID = uploaded.PublicID
	}

	if id == "" {
		if p.Image == "" {
			return e.String(400, "A product image is required")
		}
		if _, err := h.Products.Create(p); err != nil {
			return e.String(500, "Failed to create product")
		}
	} else {
		if err := h.Products.Update(p); err != nil {
			return e.String(500, "Failed to update product")
		}
	}

	h.Content.RefreshProducts()
	return e.Redirect(http.StatusSeeOther, "/admin/products")
}

// Delete removes a product and best-effort destroys its CDN asset.
// POST /admin/products/{id}/delete
func (h *CatalogHandler) Delete(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	product, err := h.Products.GetByID(id)
	if err != nil || product == nil {
		return e.String(404, "Product not found")
	}

	if err := h.Products.Delete(id); err != nil {
		return e.String(500, "Failed to delete product")
	}
	if product.ImagePublicID != "" {
		if err := h.Uploader.Destroy(e.Request.Context(), product.ImagePublicID); err != nil {
			log.Warn().Err(err).Str("product", id).Msg("asset cleanup failed after delete")
		}
	}

	h.Content.RefreshProducts()
	return e.Redirect(http.StatusSeeOther, "/admin/products")
}

// uploadImage pushes the "image" form file to the CDN. A missing file is
// not an error; it returns (nil, nil) so updates can keep the old image.
func (h *CatalogHandler) uploadImage(e *core.RequestEvent, section string) (*domain.UploadResult, error) {
	file, _, err := e.Request.FormFile("image")
	if err != nil {
		return nil, nil
	}
	defer file.Close()
	return h.Uploader.Upload(e.Request.Context(), file, section)
}

// splitSizes parses the comma-separated size list, dropping blanks so
// "38, , 40" stores as ["38","40"].
func splitSizes(raw string) []string {
	var sizes []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sizes = append(sizes, s)
		}
	}
	return sizes
}
