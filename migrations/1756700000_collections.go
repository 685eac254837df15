package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

func init() {
	m.Register(func(app core.App) error {
		addSystemFields := func(c *core.Collection) {
			c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
			c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		}

		// Content records are seeded with short fixed ids ("main", "faq1"),
		// so the default 15-char id minimum must be relaxed.
		relaxID := func(c *core.Collection) {
			if f, ok := c.Fields.GetByName("id").(*core.TextField); ok {
				f.Min = 2
			}
		}

		publicRead := func(c *core.Collection) {
			c.ListRule = types.Pointer("")
			c.ViewRule = types.Pointer("")
		}

		// ----------------------------------------------------
		// HERO SLIDES
		// ----------------------------------------------------
		hero := core.NewBaseCollection("hero_slides")
		addSystemFields(hero)
		relaxID(hero)
		publicRead(hero)
		hero.Fields.Add(&core.TextField{Name: "title", Required: true})
		hero.Fields.Add(&core.TextField{Name: "highlight_text"})
		hero.Fields.Add(&core.TextField{Name: "description", Max: 2000})
		hero.Fields.Add(&core.NumberField{Name: "order"})
		hero.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(hero); err != nil {
			return err
		}

		// ----------------------------------------------------
		// ICON BOXES
		// ----------------------------------------------------
		boxes := core.NewBaseCollection("icon_boxes")
		addSystemFields(boxes)
		relaxID(boxes)
		publicRead(boxes)
		boxes.Fields.Add(&core.TextField{Name: "icon"})
		boxes.Fields.Add(&core.TextField{Name: "title", Required: true})
		boxes.Fields.Add(&core.TextField{Name: "description", Max: 2000})
		boxes.Fields.Add(&core.TextField{Name: "link"})
		boxes.Fields.Add(&core.NumberField{Name: "order"})
		boxes.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(boxes); err != nil {
			return err
		}

		// ----------------------------------------------------
		// ABOUT (singleton)
		// ----------------------------------------------------
		about := core.NewBaseCollection("about")
		addSystemFields(about)
		relaxID(about)
		publicRead(about)
		about.Fields.Add(&core.TextField{Name: "title"})
		about.Fields.Add(&core.TextField{Name: "subtitle"})
		about.Fields.Add(&core.TextField{Name: "description", Max: 5000})
		// Image fields hold either a CDN URL or a relative asset path, so
		// they stay plain text instead of URL-validated.
		about.Fields.Add(&core.TextField{Name: "image"})
		about.Fields.Add(&core.TextField{Name: "image_public_id"})
		about.Fields.Add(&core.JSONField{Name: "features"})
		if err := app.Save(about); err != nil {
			return err
		}

		// ----------------------------------------------------
		// SERVICES
		// ----------------------------------------------------
		services := core.NewBaseCollection("services")
		addSystemFields(services)
		relaxID(services)
		publicRead(services)
		services.Fields.Add(&core.TextField{Name: "icon"})
		services.Fields.Add(&core.TextField{Name: "title", Required: true})
		services.Fields.Add(&core.TextField{Name: "description", Max: 2000})
		services.Fields.Add(&core.NumberField{Name: "order"})
		services.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(services); err != nil {
			return err
		}

		// ----------------------------------------------------
		// PRODUCTS
		// ----------------------------------------------------
		products := core.NewBaseCollection("products")
		addSystemFields(products)
		relaxID(products)
		publicRead(products)
		products.Fields.Add(&core.TextField{Name: "title", Required: true})
		products.Fields.Add(&core.SelectField{
			Name:      "category",
			Values:    []string{"man", "woman", "new"},
			MaxSelect: 1,
		})
		products.Fields.Add(&core.TextField{Name: "image"})
		products.Fields.Add(&core.TextField{Name: "image_public_id"})
		products.Fields.Add(&core.TextField{Name: "description", Max: 5000})
		products.Fields.Add(&core.NumberField{Name: "price", Min: types.Pointer(0.0)})
		products.Fields.Add(&core.JSONField{Name: "sizes"})
		products.Fields.Add(&core.TextField{Name: "order_link"})
		products.Fields.Add(&core.BoolField{Name: "is_new"})
		products.Fields.Add(&core.BoolField{Name: "is_featured"})
		products.Fields.Add(&core.NumberField{Name: "order"})
		products.Fields.Add(&core.BoolField{Name: "is_active"})
		products.AddIndex("idx_products_category", false, "category", "")
		products.AddIndex("idx_products_active", false, "is_active", "")
		if err := app.Save(products); err != nil {
			return err
		}

		// ----------------------------------------------------
		// PRICING
		// ----------------------------------------------------
		pricing := core.NewBaseCollection("pricing")
		addSystemFields(pricing)
		relaxID(pricing)
		publicRead(pricing)
		pricing.Fields.Add(&core.TextField{Name: "category", Required: true})
		pricing.Fields.Add(&core.NumberField{Name: "price", Min: types.Pointer(0.0)})
		pricing.Fields.Add(&core.TextField{Name: "currency"})
		pricing.Fields.Add(&core.TextField{Name: "unit"})
		pricing.Fields.Add(&core.JSONField{Name: "features"})
		pricing.Fields.Add(&core.BoolField{Name: "is_featured"})
		pricing.Fields.Add(&core.TextField{Name: "badge"})
		pricing.Fields.Add(&core.NumberField{Name: "order"})
		pricing.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(pricing); err != nil {
			return err
		}

		// ----------------------------------------------------
		// TEAM
		// ----------------------------------------------------
		team := core.NewBaseCollection("team")
		addSystemFields(team)
		relaxID(team)
		publicRead(team)
		team.Fields.Add(&core.TextField{Name: "name", Required: true})
		team.Fields.Add(&core.TextField{Name: "role"})
		team.Fields.Add(&core.TextField{Name: "description", Max: 2000})
		team.Fields.Add(&core.TextField{Name: "image"})
		team.Fields.Add(&core.TextField{Name: "image_public_id"})
		team.Fields.Add(&core.JSONField{Name: "social_links"})
		team.Fields.Add(&core.NumberField{Name: "order"})
		team.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(team); err != nil {
			return err
		}

		// ----------------------------------------------------
		// CONTACT (singleton)
		// ----------------------------------------------------
		contact := core.NewBaseCollection("contact")
		addSystemFields(contact)
		relaxID(contact)
		publicRead(contact)
		contact.Fields.Add(&core.TextField{Name: "address"})
		contact.Fields.Add(&core.EmailField{Name: "email"})
		contact.Fields.Add(&core.TextField{Name: "phone"})
		contact.Fields.Add(&core.TextField{Name: "whatsapp"})
		contact.Fields.Add(&core.TextField{Name: "facebook"})
		contact.Fields.Add(&core.TextField{Name: "youtube"})
		contact.Fields.Add(&core.TextField{Name: "linkedin"})
		contact.Fields.Add(&core.TextField{Name: "instagram"})
		if err := app.Save(contact); err != nil {
			return err
		}

		// ----------------------------------------------------
		// FAQS
		// ----------------------------------------------------
		faqs := core.NewBaseCollection("faqs")
		addSystemFields(faqs)
		relaxID(faqs)
		publicRead(faqs)
		faqs.Fields.Add(&core.TextField{Name: "question", Required: true})
		faqs.Fields.Add(&core.TextField{Name: "answer", Max: 5000})
		faqs.Fields.Add(&core.NumberField{Name: "order"})
		faqs.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(faqs); err != nil {
			return err
		}

		// ----------------------------------------------------
		// SITE SETTINGS (singleton)
		// ----------------------------------------------------
		settings := core.NewBaseCollection("site_settings")
		addSystemFields(settings)
		relaxID(settings)
		publicRead(settings)
		settings.Fields.Add(&core.TextField{Name: "site_name"})
		settings.Fields.Add(&core.TextField{Name: "tagline"})
		settings.Fields.Add(&core.TextField{Name: "logo"})
		settings.Fields.Add(&core.TextField{Name: "logo_public_id"})
		settings.Fields.Add(&core.TextField{Name: "footer_logo"})
		settings.Fields.Add(&core.TextField{Name: "footer_logo_public_id"})
		settings.Fields.Add(&core.TextField{Name: "hero_background"})
		settings.Fields.Add(&core.TextField{Name: "hero_background_public_id"})
		settings.Fields.Add(&core.TextField{Name: "footer_about", Max: 2000})
		settings.Fields.Add(&core.TextField{Name: "seo_title"})
		settings.Fields.Add(&core.TextField{Name: "seo_description", Max: 1000})
		settings.Fields.Add(&core.TextField{Name: "seo_keywords"})
		if err := app.Save(settings); err != nil {
			return err
		}

		// ----------------------------------------------------
		// MESSAGES (admin-only read)
		// ----------------------------------------------------
		messages := core.NewBaseCollection("messages")
		addSystemFields(messages)
		messages.Fields.Add(&core.TextField{Name: "name", Required: true})
		messages.Fields.Add(&core.EmailField{Name: "email", Required: true})
		messages.Fields.Add(&core.TextField{Name: "subject"})
		messages.Fields.Add(&core.TextField{Name: "message", Required: true, Max: 10000})
		messages.Fields.Add(&core.BoolField{Name: "is_read"})
		messages.AddIndex("idx_messages_read", false, "is_read", "")
		if err := app.Save(messages); err != nil {
			return err
		}

		// ----------------------------------------------------
		// ORDERS (admin-only read)
		// ----------------------------------------------------
		orders := core.NewBaseCollection("orders")
		addSystemFields(orders)
		orders.Fields.Add(&core.TextField{Name: "product_id"})
		orders.Fields.Add(&core.TextField{Name: "product_title", Required: true})
		orders.Fields.Add(&core.TextField{Name: "product_image"})
		orders.Fields.Add(&core.NumberField{Name: "product_price", Min: types.Pointer(0.0)})
		orders.Fields.Add(&core.TextField{Name: "price_kes"})
		orders.Fields.Add(&core.TextField{Name: "product_category"})
		orders.Fields.Add(&core.TextField{Name: "available_sizes"})
		orders.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		orders.Fields.Add(&core.TextField{Name: "customer_phone", Required: true})
		orders.Fields.Add(&core.TextField{Name: "selected_size"})
		orders.Fields.Add(&core.SelectField{
			Name:      "status",
			Values:    []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled"},
			MaxSelect: 1,
		})
		orders.Fields.Add(&core.TextField{Name: "source"})
		orders.AddIndex("idx_orders_status", false, "status", "")
		if err := app.Save(orders); err != nil {
			return err
		}

		// ----------------------------------------------------
		// ANALYTICS (append-only page views)
		// ----------------------------------------------------
		analytics := core.NewBaseCollection("analytics")
		analytics.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		analytics.Fields.Add(&core.TextField{Name: "visitor_id"})
		analytics.Fields.Add(&core.TextField{Name: "page"})
		analytics.Fields.Add(&core.TextField{Name: "referrer"})
		analytics.Fields.Add(&core.SelectField{
			Name:      "device",
			Values:    []string{"mobile", "tablet", "desktop"},
			MaxSelect: 1,
		})
		analytics.Fields.Add(&core.TextField{Name: "user_agent", Max: 200})
		analytics.Fields.Add(&core.TextField{Name: "language"})
		analytics.Fields.Add(&core.NumberField{Name: "screen_width"})
		analytics.Fields.Add(&core.NumberField{Name: "screen_height"})
		analytics.AddIndex("idx_analytics_created", false, "created", "")
		analytics.AddIndex("idx_analytics_device", false, "device", "")
		return app.Save(analytics)
	}, func(app core.App) error {
		names := []string{
			"hero_slides", "icon_boxes", "about", "services", "products",
			"pricing", "team", "contact", "faqs", "site_settings",
			"messages", "orders", "analytics",
		}
		for _, name := range names {
			col, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				continue
			}
			if err := app.Delete(col); err != nil {
				return err
			}
		}
		return nil
	})
}
