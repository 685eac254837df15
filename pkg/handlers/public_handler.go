package handlers

import (
	"errors"
	"html/template"
	"net/http"

	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"
	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
)

const visitorCookieMaxAge = 365 * 24 * 60 * 60

type PublicHandler struct {
	Templates *template.Template
	Content   *service.ContentService
	Orders    *service.OrderService
	Messages  *service.MessageService
	Analytics *service.AnalyticsService
	Products  domain.ProductRepository
}

// Index renders the single-page storefront from the content snapshot.
// GET /
func (h *PublicHandler) Index(e *core.RequestEvent) error {
	snap := h.Content.Snapshot()

	data := map[string]any{
		"Hero":      snap.HeroSlides,
		"IconBoxes": snap.IconBoxes,
		"About":     snap.About,
		"Services":  snap.Services,
		"Products":  snap.Products,
		"Pricing":   snap.Pricing,
		"Team":      snap.Team,
		"Contact":   snap.Contact,
		"FAQs":      snap.FAQs,
	}

	h.trackPageView(e, "/")

	return RenderPage(h.Templates, e, "layouts/base.html", "public/index.html", data)
}

// ProductsByCategory filters the catalog for the category tab links.
// GET /products/{category}
func (h *PublicHandler) ProductsByCategory(e *core.RequestEvent) error {
	category := e.Request.PathValue("category")
	products, err := h.Products.ByCategory(category)
	if err != nil {
		return e.String(500, "Failed to load products")
	}

	snap := h.Content.Snapshot()
	data := map[string]any{
		"Products": products,
		"Category": category,
		"Contact":  snap.Contact,
	}

	h.trackPageView(e, "/products/"+category)

	return RenderPage(h.Templates, e, "layouts/base.html", "public/products.html", data)
}

// PlaceOrder validates the order form and redirects the customer to the
// pre-filled WhatsApp conversation. Persistence and the admin email happen
// detached; the redirect never waits for them.
// POST /order
func (h *PublicHandler) PlaceOrder(e *core.RequestEvent) error {
	productID := e.Request.FormValue("product_id")
	product, err := h.Products.GetByID(productID)
	if err != nil || product == nil {
		product = defaultProduct(productID)
	}
	if product == nil {
		return e.String(404, "Product not found")
	}

	link, err := h.Orders.PlaceOrder(service.OrderRequest{
		Product:       product,
		CustomerName:  e.Request.FormValue("customer_name"),
		CustomerPhone: e.Request.FormValue("customer_phone"),
		SelectedSize:  e.Request.FormValue("selected_size"),
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingCustomerInfo) {
			return e.String(400, "Please enter your name and phone number")
		}
		return e.String(500, "Failed to place order")
	}

	return e.Redirect(http.StatusSeeOther, link)
}

// ContactSubmit stores a contact-form message and queues the auto-reply.
// POST /contact
func (h *PublicHandler) ContactSubmit(e *core.RequestEvent) error {
	err := h.Messages.Submit(
		e.Request.FormValue("name"),
		e.Request.FormValue("email"),
		e.Request.FormValue("subject"),
		e.Request.FormValue("message"),
	)
	if err != nil {
		if errors.Is(err, service.ErrMissingContactFields) {
			return e.String(400, "Please fill in your name, email and message")
		}
		return e.String(500, "Failed to send message")
	}

	return e.Redirect(http.StatusSeeOther, "/?sent=true#contact")
}

// TrackBeacon records client-side page views with screen metrics the
// server cannot observe.
// POST /api/track
func (h *PublicHandler) TrackBeacon(e *core.RequestEvent) error {
	var payload struct {
		Page         string `json:"page"`
		Referrer     string `json:"referrer"`
		Language     string `json:"language"`
		ScreenWidth  any    `json:"screen_width"`
		ScreenHeight any    `json:"screen_height"`
	}
	if err := e.BindBody(&payload); err != nil {
		return e.JSON(400, map[string]string{"error": "invalid payload"})
	}
	if payload.Page == "" {
		payload.Page = "/"
	}

	visitorID, isNew := h.visitorID(e)
	h.Analytics.Track(service.PageView{
		VisitorID:    visitorID,
		NewVisitor:   isNew,
		Page:         payload.Page,
		Referrer:     payload.Referrer,
		UserAgent:    e.Request.UserAgent(),
		Language:     payload.Language,
		ScreenWidth:  cast.ToInt(payload.ScreenWidth),
		ScreenHeight: cast.ToInt(payload.ScreenHeight),
	})

	return e.JSON(200, map[string]string{"status": "ok"})
}

func (h *PublicHandler) trackPageView(e *core.RequestEvent, page string) {
	visitorID, isNew := h.visitorID(e)
	h.Analytics.Track(service.PageView{
		VisitorID:  visitorID,
		NewVisitor: isNew,
		Page:       page,
		Referrer:   e.Request.Referer(),
		UserAgent:  e.Request.UserAgent(),
		Language:   e.Request.Header.Get("Accept-Language"),
	})
}

// visitorID reads the anonymous visitor cookie, minting one on first
// contact. The bool reports whether this request started a new session.
func (h *PublicHandler) visitorID(e *core.RequestEvent) (string, bool) {
	if cookie, err := e.Request.Cookie(service.VisitorCookie); err == nil && cookie.Value != "" {
		return cookie.Value, false
	}
	id := service.NewVisitorID()
	http.SetCookie(e.Response, &http.Cookie{
		Name:     service.VisitorCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, true
}

// defaultProduct resolves an order against the baked-in catalog when the
// store has not been seeded yet. The public page may be showing defaults;
// ordering from them must still work.
func defaultProduct(id string) *domain.Product {
	for _, p := range domain.DefaultProducts() {
		if p.ID == id {
			return p
		}
	}
	return nil
}
